package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ip-search-agent/internal/domain"
	"github.com/feral-file/ip-search-agent/internal/logger"
	"github.com/feral-file/ip-search-agent/internal/metadata"
	"github.com/feral-file/ip-search-agent/internal/metrics"
)

func (a *agent) SearchMultipleIdentifiers(ctx context.Context, ids []string) (env *BatchEnvelope) {
	defer recoverInto(ctx, &env, func(msg string) *BatchEnvelope {
		failure := a.batchFailure(msg)
		failure.SearchType = SearchTypeBatch
		return failure
	})

	env = a.batch(ctx, ids)
	env.SearchType = SearchTypeBatch
	return env
}

func (a *agent) CompareAssets(ctx context.Context, ids []string) (env *BatchEnvelope) {
	defer recoverInto(ctx, &env, func(msg string) *BatchEnvelope {
		failure := a.batchFailure(msg)
		failure.SearchType = SearchTypeComparison
		return failure
	})

	env = a.batch(ctx, ids)
	env.SearchType = SearchTypeComparison
	if !env.Success {
		return env
	}

	assets := make([]*metadata.AssetMetadata, 0, len(env.Results))
	for _, r := range env.Results {
		if r.AssetView != nil && r.Data != nil {
			assets = append(assets, r.Data.Metadata)
		}
	}
	env.Summary = a.synthesizer.SummarizeComparison(ctx, assets)
	return env
}

// batch looks up every id on the worker pool and waits for all of them.
// Failures are keyed by the id as the caller supplied it.
func (a *agent) batch(ctx context.Context, ids []string) *BatchEnvelope {
	if len(ids) == 0 {
		a.metrics.ObserveSearch(branchBatch, metrics.OutcomeError)
		return a.batchFailure("Array of IPIDs is required")
	}
	if a.config.MaxBatchIDs > 0 && len(ids) > a.config.MaxBatchIDs {
		a.metrics.ObserveSearch(branchBatch, metrics.OutcomeError)
		return a.batchFailure(fmt.Sprintf("%s: %d requested, at most %d allowed", domain.ErrTooManyIdentifiers, len(ids), a.config.MaxBatchIDs))
	}

	logger.InfoCtx(ctx, "Batch identifier lookup", zap.Int("count", len(ids)))
	a.metrics.ObserveBatch(len(ids))

	group := a.pool.NewGroup()
	for _, id := range ids {
		id := id
		group.Submit(func() *Envelope {
			return a.SearchByIdentifier(ctx, id)
		})
	}

	results, err := group.Wait()
	if err != nil {
		logger.ErrorCtx(ctx, err)
		a.metrics.ObserveSearch(branchBatch, metrics.OutcomeError)
		return a.batchFailure(err.Error())
	}

	env := &BatchEnvelope{
		Success:       true,
		TotalSearched: len(ids),
		Results:       []*Envelope{},
		Errors:        []BatchError{},
		Timestamp:     a.timestamp(),
	}
	for i, r := range results {
		if r != nil && r.Success {
			env.Results = append(env.Results, r)
			continue
		}
		msg := "lookup failed"
		if r != nil {
			msg = r.Error
		}
		env.Errors = append(env.Errors, BatchError{IPID: ids[i], Error: msg})
	}
	env.Successful = len(env.Results)
	env.Failed = len(env.Errors)

	a.metrics.ObserveSearch(branchBatch, metrics.OutcomeOK)
	return env
}

func (a *agent) batchFailure(msg string) *BatchEnvelope {
	return &BatchEnvelope{
		Success:   false,
		Error:     msg,
		Results:   []*Envelope{},
		Errors:    []BatchError{},
		Timestamp: a.timestamp(),
	}
}

func (a *agent) analysisFailure(ipID, msg string) *AnalysisEnvelope {
	return &AnalysisEnvelope{
		Success:    false,
		SearchType: SearchTypeAnalysis,
		IPID:       ipID,
		Error:      msg,
		Timestamp:  a.timestamp(),
	}
}

func (a *agent) AnalyzeAsset(ctx context.Context, input, intent string) (env *AnalysisEnvelope) {
	defer recoverInto(ctx, &env, func(msg string) *AnalysisEnvelope {
		return a.analysisFailure(input, msg)
	})

	data, failure := a.lookup(ctx, input)
	if failure != nil {
		env = a.analysisFailure(failure.IPID, failure.Error)
		env.Suggestion = failure.Suggestion
		return env
	}

	if intent == "" {
		intent = domain.FALLBACK_QUERY_INTENT
	}
	view := data.Metadata.PortalData

	return &AnalysisEnvelope{
		Success:                  true,
		SearchType:               SearchTypeAnalysis,
		IPID:                     data.IPID,
		Intent:                   intent,
		MetadataAnalysis:         a.synthesizer.AnalyzeMetadata(ctx, data.Metadata),
		LicensingRecommendations: a.synthesizer.RecommendLicensing(ctx, view.LicenseInfo, intent),
		RelationshipInsights:     a.synthesizer.RelationshipInsights(ctx, view.RelationshipInfo),
		IsMock:                   data.IsMock,
		Timestamp:                a.timestamp(),
	}
}
