package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
)

type message struct {
	subject *texttemplate.Template
	html    *htmltemplate.Template
	text    *texttemplate.Template
}

func newMessage(subject, body string) message {
	return message{
		subject: texttemplate.Must(texttemplate.New("subject").Funcs(funcs).Parse(subject)),
		html:    htmltemplate.Must(htmltemplate.New("html").Funcs(funcs).Parse("<p>Hello {{.Store.Name}},</p><p>" + body + "</p>")),
		text:    texttemplate.Must(texttemplate.New("text").Funcs(funcs).Parse("Hello {{.Store.Name}},\n\n" + body + "\n")),
	}
}

var funcs = map[string]any{
	"money": formatMoney,
}

// formatMoney переводит минорные единицы (kobo) в строку с двумя знаками.
func formatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

var (
	withdrawalCreated = newMessage(
		"Withdrawal request {{.Request.RequestNumber}} received",
		"Your withdrawal request {{.Request.RequestNumber}} for {{money .Request.RequestedAmount}} is pending review. "+
			"A processing fee of {{money .Request.ProcessingFee}} applies, {{money .Request.NetAmount}} will be paid to "+
			"{{.Request.Bank.BankName}} account {{.Request.Bank.AccountNumber}}.",
	)
	withdrawalApproved = newMessage(
		"Withdrawal request {{.Request.RequestNumber}} approved",
		"Your withdrawal request {{.Request.RequestNumber}} was approved. {{money .Request.NetAmount}} is on its way "+
			"to {{.Request.Bank.BankName}} account {{.Request.Bank.AccountNumber}}. Reference: {{.Request.TransactionReference}}.",
	)
	withdrawalRejected = newMessage(
		"Withdrawal request {{.Request.RequestNumber}} rejected",
		"Your withdrawal request {{.Request.RequestNumber}} was rejected: {{.Request.RejectionReason}}. "+
			"{{money .Request.RequestedAmount}} has been returned to your wallet balance.",
	)
	withdrawalFailed = newMessage(
		"Withdrawal request {{.Request.RequestNumber}} failed",
		"The payout for withdrawal request {{.Request.RequestNumber}} failed: {{.Request.FailureReason}}. "+
			"{{money .Request.RequestedAmount}} has been returned to your wallet balance.",
	)
)

type withdrawalData struct {
	Store   entities.StoreInfo
	Request entities.WithdrawalRequest
}

func render(m message, store entities.StoreInfo, req entities.WithdrawalRequest) (entities.Notification, error) {
	data := withdrawalData{Store: store, Request: req}

	var subj, html, text bytes.Buffer
	if err := m.subject.Execute(&subj, data); err != nil {
		return entities.Notification{}, fmt.Errorf("failed to render subject: %w", err)
	}
	if err := m.html.Execute(&html, data); err != nil {
		return entities.Notification{}, fmt.Errorf("failed to render html body: %w", err)
	}
	if err := m.text.Execute(&text, data); err != nil {
		return entities.Notification{}, fmt.Errorf("failed to render text body: %w", err)
	}

	return entities.Notification{
		Recipient: store.Email,
		Subject:   subj.String(),
		HTMLBody:  html.String(),
		TextBody:  text.String(),
	}, nil
}

func WithdrawalCreated(store entities.StoreInfo, req entities.WithdrawalRequest) (entities.Notification, error) {
	return render(withdrawalCreated, store, req)
}

func WithdrawalApproved(store entities.StoreInfo, req entities.WithdrawalRequest) (entities.Notification, error) {
	return render(withdrawalApproved, store, req)
}

func WithdrawalRejected(store entities.StoreInfo, req entities.WithdrawalRequest) (entities.Notification, error) {
	return render(withdrawalRejected, store, req)
}

func WithdrawalFailed(store entities.StoreInfo, req entities.WithdrawalRequest) (entities.Notification, error) {
	return render(withdrawalFailed, store, req)
}
