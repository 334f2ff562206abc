package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

var stores = []string{
	"0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11",
	"0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f12",
	"0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f13",
}

var walletPaths = []string{
	"/wallet",
	"/wallet/transactions?limit=20",
	"/wallet/transactions?type=credit&source=order",
}

var withdrawalPaths = []string{
	"/stores/%s/withdrawals",
	"/stores/%s/withdrawals?status=pending",
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	store := stores[rand.Intn(len(stores))]
	path := walletPaths[rand.Intn(len(walletPaths))]
	if rand.Intn(2) == 0 {
		path = fmt.Sprintf(withdrawalPaths[rand.Intn(len(withdrawalPaths))], store)
	}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("X-User-ID", "user-"+store)
	req.Header.Set("X-User-Role", "store")
	req.Header.Set("X-Store-ID", store)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", path, "->", resp.Status)
	resp.Body.Close()
}
