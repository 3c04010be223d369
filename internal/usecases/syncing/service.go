package syncing

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/urn"
	"github.com/vfg2006/linkedin-ads-center/internal/config"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/assembling"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

// Options parametriza uma sincronização.
type Options struct {
	// Force ignora o portão de frescor.
	Force bool
	// Trigger identifica quem disparou: manual, scheduler ou api.
	Trigger string
}

// Service orquestra a pipeline completa: portão de frescor, busca,
// montagem, gravação em arquivo e banco, e bracketing do sync_log.
type Service struct {
	cfg       *config.Config
	auth      Authenticator
	gateway   Gateway
	assembler Assembler
	persister Persister
	syncLog   SyncLogger
	jobs      JobStore

	// running serializa execuções: duas sincronizações simultâneas
	// duplicariam chamadas à API e upserts.
	running sync.Mutex
}

func NewService(
	cfg *config.Config,
	auth Authenticator,
	gateway Gateway,
	assembler Assembler,
	persister Persister,
	syncLog SyncLogger,
	jobs JobStore,
) *Service {
	return &Service{
		cfg:       cfg,
		auth:      auth,
		gateway:   gateway,
		assembler: assembler,
		persister: persister,
		syncLog:   syncLog,
		jobs:      jobs,
	}
}

func (s *Service) Jobs() JobStore {
	return s.jobs
}

// idProbe extrai só o id de um payload cru.
type idProbe struct {
	ID json.Number `json:"id"`
}

// Run executa uma sincronização síncrona de ponta a ponta. Quando o
// portão de frescor barra, devolve um Result com Skipped e o motivo.
func (s *Service) Run(ctx context.Context, opts Options) (*Result, error) {
	s.running.Lock()
	defer s.running.Unlock()

	logger := log.ForContext(ctx)

	if !s.auth.Authenticated() {
		return nil, &domain.AuthenticationError{Message: "não autenticado; rode o fluxo de autorização primeiro"}
	}

	should, reason, err := s.syncLog.ShouldSync(ctx, GlobalScope, opts.Force)
	if err != nil {
		return nil, err
	}
	if !should {
		logger.WithField("reason", reason).Info("Sincronização dispensada pelo portão de frescor")
		return &Result{Skipped: true, Reason: reason}, nil
	}

	trigger := opts.Trigger
	if trigger == "" {
		trigger = "manual"
	}

	runID, err := s.syncLog.StartSync(ctx, GlobalScope, trigger)
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{"run_id": runID, "trigger": trigger, "reason": reason}).
		Info("Sincronização iniciada")

	result, stats, err := s.pipeline(ctx)
	if err != nil {
		stats.Errors = err.Error()
		if finishErr := s.syncLog.FinishSync(ctx, runID, domain.SyncStatusFailed, stats); finishErr != nil {
			logger.WithError(finishErr).Error("Falha ao finalizar o sync_log após erro")
		}
		return nil, err
	}

	if err := s.syncLog.FinishSync(ctx, runID, domain.SyncStatusSuccess, stats); err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"run_id":            runID,
		"campaigns_fetched": stats.CampaignsFetched,
		"creatives_fetched": stats.CreativesFetched,
		"api_calls_made":    stats.APICallsMade,
	}).Info("Sincronização concluída")

	return result, nil
}

// RunAsync dispara a sincronização em background e devolve o job para
// acompanhamento.
func (s *Service) RunAsync(ctx context.Context, opts Options) (*Job, error) {
	job, err := s.jobs.Create(opts.Trigger)
	if err != nil {
		return nil, err
	}

	// O contexto da requisição morre com a resposta; o job segue com o
	// ID de correlação original em um contexto próprio.
	jobCtx := context.WithValue(context.Background(), log.CorrelationIDKey, log.GetCorrelationID(ctx))

	go func() {
		result, err := s.Run(jobCtx, opts)
		if err != nil {
			s.jobs.Finish(job.ID, nil, err.Error())
			return
		}
		s.jobs.Finish(job.ID, result, "")
	}()

	return job, nil
}

func (s *Service) pipeline(ctx context.Context) (*Result, domain.SyncStats, error) {
	stats := domain.SyncStats{}
	logger := log.ForContext(ctx)

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -s.cfg.Sync.LookbackDays)

	rawAccounts, err := s.gateway.FetchAdAccounts(ctx)
	if err != nil {
		stats.APICallsMade = s.gateway.CallCount()
		return nil, stats, errors.Wrap(err, "falha ao buscar contas de anúncio")
	}

	logger.WithField("accounts", len(rawAccounts)).Info("Contas de anúncio encontradas")

	var (
		accountIDs      []int64
		allCampaigns    []json.RawMessage
		allCreatives    []json.RawMessage
		campaignIDs     []string
		creativeIDs     []string
		campaignIDsByAc = make(map[int64][]int64)
	)

	for _, rawAccount := range rawAccounts {
		probe := idProbe{}
		if err := utils.Json.Unmarshal(rawAccount, &probe); err != nil {
			continue
		}
		accountID, err := probe.ID.Int64()
		if err != nil {
			continue
		}
		accountIDs = append(accountIDs, accountID)

		rawCampaigns, err := s.gateway.FetchCampaigns(ctx, accountID, nil)
		if err != nil {
			stats.APICallsMade = s.gateway.CallCount()
			return nil, stats, errors.Wrapf(err, "falha ao buscar campanhas da conta %d", accountID)
		}

		for _, rawCampaign := range rawCampaigns {
			tagged, campaignID, err := tagAccount(rawCampaign, accountID)
			if err != nil {
				// Sem decodificar não há como marcar; o validador
				// descarta o registro adiante de qualquer forma.
				allCampaigns = append(allCampaigns, rawCampaign)
				continue
			}

			allCampaigns = append(allCampaigns, tagged)
			if campaignID != 0 {
				campaignIDs = append(campaignIDs, strconv.FormatInt(campaignID, 10))
				campaignIDsByAc[accountID] = append(campaignIDsByAc[accountID], campaignID)
			}
		}

		rawCreatives, err := s.gateway.FetchCreatives(ctx, accountID, campaignIDsByAc[accountID])
		if err != nil {
			stats.APICallsMade = s.gateway.CallCount()
			return nil, stats, errors.Wrapf(err, "falha ao buscar criativos da conta %d", accountID)
		}

		allCreatives = append(allCreatives, rawCreatives...)
	}

	for _, rawCreative := range allCreatives {
		probe := struct {
			ID string `json:"id"`
		}{}
		if err := utils.Json.Unmarshal(rawCreative, &probe); err == nil && probe.ID != "" {
			creativeIDs = append(creativeIDs, urn.TrailingID(probe.ID))
		}
	}

	stats.CampaignsFetched = len(allCampaigns)
	stats.CreativesFetched = len(allCreatives)

	logger.WithFields(log.Fields{
		"campaigns": len(allCampaigns),
		"creatives": len(allCreatives),
	}).Info("Entidades coletadas; buscando métricas e demografia em paralelo")

	var (
		wg              sync.WaitGroup
		mu              sync.Mutex
		campaignMetrics []json.RawMessage
		creativeMetrics []json.RawMessage
		demographics    = make(map[int64]linkedindomain.AccountDemographics)
		firstErr        error
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(2)

	go func() {
		defer wg.Done()
		rows, err := s.gateway.FetchCampaignMetrics(ctx, campaignIDs, start, end)
		if err != nil {
			fail(errors.Wrap(err, "falha ao buscar métricas de campanha"))
			return
		}
		mu.Lock()
		campaignMetrics = rows
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		rows, err := s.gateway.FetchCreativeMetrics(ctx, creativeIDs, start, end)
		if err != nil {
			fail(errors.Wrap(err, "falha ao buscar métricas de criativo"))
			return
		}
		mu.Lock()
		creativeMetrics = rows
		mu.Unlock()
	}()

	for _, accountID := range accountIDs {
		wg.Add(1)
		go func(accountID int64) {
			defer wg.Done()
			pivots := s.gateway.FetchDemographics(ctx, accountID, start, end)
			mu.Lock()
			demographics[accountID] = linkedindomain.AccountDemographics{Pivots: pivots}
			mu.Unlock()
		}(accountID)
	}

	wg.Wait()

	if firstErr != nil {
		stats.APICallsMade = s.gateway.CallCount()
		return nil, stats, firstErr
	}

	snapshot, err := s.assembler.Assemble(ctx, assembling.Input{
		Accounts:        rawAccounts,
		Campaigns:       allCampaigns,
		Creatives:       allCreatives,
		CampaignMetrics: campaignMetrics,
		CreativeMetrics: creativeMetrics,
		Demographics:    demographics,
		Start:           start,
		End:             end,
	})
	if err != nil {
		stats.APICallsMade = s.gateway.CallCount()
		return nil, stats, errors.Wrap(err, "falha ao montar o snapshot")
	}

	path, err := assembling.SaveSnapshotFile(snapshot, s.cfg.Snapshot.Dir)
	if err != nil {
		stats.APICallsMade = s.gateway.CallCount()
		return nil, stats, err
	}

	logger.WithField("path", path).Info("Snapshot gravado em disco")

	if err := s.persister.Persist(ctx, snapshot); err != nil {
		stats.APICallsMade = s.gateway.CallCount()
		return nil, stats, errors.Wrap(err, "falha ao persistir o snapshot no banco")
	}

	stats.APICallsMade = s.gateway.CallCount()

	return &Result{
		SnapshotPath: path,
		AccountCount: len(snapshot.Accounts),
	}, stats, nil
}

// tagAccount injeta a marcação "_account_id" em um payload cru de
// campanha e devolve também o id da campanha.
func tagAccount(raw json.RawMessage, accountID int64) (json.RawMessage, int64, error) {
	fields := map[string]interface{}{}
	if err := utils.Json.Unmarshal(raw, &fields); err != nil {
		return nil, 0, err
	}

	fields["_account_id"] = accountID

	tagged, err := utils.Json.Marshal(fields)
	if err != nil {
		return nil, 0, err
	}

	var campaignID int64
	probe := idProbe{}
	if err := utils.Json.Unmarshal(raw, &probe); err == nil {
		campaignID, _ = probe.ID.Int64()
	}

	return tagged, campaignID, nil
}
