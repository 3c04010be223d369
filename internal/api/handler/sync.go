package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/syncing"
	"github.com/vfg2006/linkedin-ads-center/pkg/apiErrors"
)

// Syncer é o recorte do syncing.Service usado pelos handlers de
// sincronização.
type Syncer interface {
	RunAsync(ctx context.Context, opts syncing.Options) (*syncing.Job, error)
	Jobs() syncing.JobStore
}

// RunSync dispara uma sincronização em background e retorna o job criado
func RunSync(service Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		force := r.URL.Query().Get("force") == "true"

		job, err := service.RunAsync(r.Context(), syncing.Options{
			Force:   force,
			Trigger: "api",
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao disparar sincronização")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao disparar sincronização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(job); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta do job")
		}
	})
}

// GetSyncJob consulta um job de sincronização pelo ID
func GetSyncJob(service Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		job, ok := service.Jobs().Get(id)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Job de sincronização não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(job); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
