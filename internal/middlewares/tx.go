package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipe-book/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The
// transaction is committed when the handler writes a status below 400 and
// rolled back otherwise, before anything reaches the client.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeTxError(w)
				return
			}

			tw := &txResponseWriter{ResponseWriter: w, tx: tx}

			defer func() {
				if rec := recover(); rec != nil {
					if !tw.finished {
						tx.Rollback()
					}
					panic(rec)
				}
			}()

			ctx := setTxToContext(r.Context(), tx)
			next.ServeHTTP(tw, r.WithContext(ctx))

			if !tw.finished {
				tw.WriteHeader(http.StatusOK)
			}
		})
	}
}

type txResponseWriter struct {
	http.ResponseWriter
	tx       *sqlx.Tx
	finished bool
	failed   bool
}

func (tw *txResponseWriter) WriteHeader(code int) {
	if tw.finished {
		return
	}
	tw.finished = true

	if code >= http.StatusBadRequest {
		if err := tw.tx.Rollback(); err != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", err)
		}
		tw.ResponseWriter.WriteHeader(code)
		return
	}

	if err := tw.tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		tw.failed = true
		writeTxError(tw.ResponseWriter)
		return
	}
	tw.ResponseWriter.WriteHeader(code)
}

// Write drops the handler body once a failed commit has been answered with 500.
func (tw *txResponseWriter) Write(b []byte) (int, error) {
	if !tw.finished {
		tw.WriteHeader(http.StatusOK)
	}
	if tw.failed {
		return len(b), nil
	}
	return tw.ResponseWriter.Write(b)
}

func writeTxError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
}

type txContextKey struct{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txContextKey{}).(*sqlx.Tx)
	return tx
}
