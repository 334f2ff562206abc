package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/pkg/utils"
	"github.com/google/uuid"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderStoreID  = "X-Store-ID"
)

type actorKey struct{}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}

// Identity берёт вызывающего из заголовков, проставленных шлюзом после аутентификации.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := entities.Actor{
			ID:      r.Header.Get(HeaderUserID),
			Role:    entities.Role(r.Header.Get(HeaderUserRole)),
			StoreID: r.Header.Get(HeaderStoreID),
		}
		if actor.ID == "" || !actor.Role.Valid() {
			utils.WriteError(w, string(entities.KindUnauthorized), entities.ErrUnauthorized.Message, http.StatusUnauthorized)
			return
		}
		if actor.Role != entities.RoleStore {
			actor.StoreID = ""
		}
		if actor.StoreID != "" && uuid.Validate(actor.StoreID) != nil {
			utils.WriteError(w, string(entities.KindUnauthorized), entities.ErrUnauthorized.Message, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// RequireRole пропускает только перечисленные роли. Ставится после Identity.
func RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				utils.WriteError(w, string(entities.KindUnauthorized), entities.ErrUnauthorized.Message, http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, actor.Role) {
				utils.WriteError(w, string(entities.KindForbidden), entities.ErrForbidden.Message, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
