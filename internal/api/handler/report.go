package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/reporting"
	"github.com/vfg2006/linkedin-ads-center/pkg/apiErrors"
)

// StatusReport retorna a saúde operacional: token, tabelas e últimas
// sincronizações
func StatusReport(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Status(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar relatório de status")
			writeReportError(w, err)
			return
		}

		writeJSON(w, report)
	})
}

// CampaignAudit lista campanhas ativas com configurações que merecem revisão
func CampaignAudit(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.CampaignAudit(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao auditar campanhas")
			writeReportError(w, err)
			return
		}

		writeJSON(w, entries)
	})
}

// CampaignPerformance lista as campanhas ordenadas por investimento
func CampaignPerformance(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		rows, err := service.CampaignPerformance(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar performance de campanhas")
			writeReportError(w, err)
			return
		}

		writeJSON(w, rows)
	})
}

// CreativePerformance lista os criativos ordenados por investimento
func CreativePerformance(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		rows, err := service.CreativePerformance(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar performance de criativos")
			writeReportError(w, err)
			return
		}

		writeJSON(w, rows)
	})
}

// VisualReport entrega a série temporal, a comparação entre campanhas e
// os KPIs globais para o dashboard
func VisualReport(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Visual(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar relatório visual")
			writeReportError(w, err)
			return
		}

		writeJSON(w, report)
	})
}

// Demographics lista os segmentos de audiência persistidos de uma conta
func Demographics(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawAccountID := r.URL.Query().Get("account_id")
		if rawAccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro account_id obrigatório", nil)
			return
		}

		accountID, err := strconv.ParseInt(rawAccountID, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro account_id inválido", nil)
			return
		}

		pivotType := r.URL.Query().Get("pivot")
		if pivotType == "" {
			pivotType = "seniority"
		}

		segments, err := service.Demographics(r.Context(), accountID, pivotType)
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar demografia")
			writeReportError(w, err)
			return
		}

		writeJSON(w, segments)
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}

func writeReportError(w http.ResponseWriter, err error) {
	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco de dados", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório", nil)
}
