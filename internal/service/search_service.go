package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"talent-search-be/internal/constant"
	"talent-search-be/internal/dto"
	"talent-search-be/internal/entity"
	"talent-search-be/internal/pkg/logger"
	"talent-search-be/internal/repository/unitofwork"
	"talent-search-be/pkg/apperror"
	"talent-search-be/pkg/search"
	"talent-search-be/pkg/search/explain"
	"talent-search-be/pkg/search/session"
)

type ISearchService interface {
	Search(ctx context.Context, userId uuid.UUID, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type searchService struct {
	uowFactory unitofwork.RepositoryFactory
	retriever  *search.Retriever
	sysLogger  logger.ILogger
}

func NewSearchService(
	uowFactory unitofwork.RepositoryFactory,
	retriever *search.Retriever,
	sysLogger logger.ILogger,
) ISearchService {
	return &searchService{
		uowFactory: uowFactory,
		retriever:  retriever,
		sysLogger:  sysLogger,
	}
}

// Search runs one turn of a search conversation: fold the query into its
// session, rank candidates against the accumulated context, then attach a
// grounded explanation to every hit.
func (c *searchService) Search(ctx context.Context, userId uuid.UUID, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	if err := validateSearchRequest(req); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	sessions := session.NewManager(uow.SearchSessionRepository())

	filters := toHistoryFilters(req.Filters)

	var (
		sess *entity.SearchSession
		err  error
	)
	if req.SessionId == nil {
		sess, err = sessions.Create(ctx, userId, req.Query, filters)
	} else {
		sess, err = sessions.Append(ctx, *req.SessionId, req.Query, filters)
	}
	if err != nil {
		return nil, err
	}

	effectiveQuery := session.BuildCombinedQuery(sess.QueryHistory)

	limit := search.DefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	searchFilters := search.Filters{}
	if req.Filters != nil {
		searchFilters.LifecycleState = req.Filters.LifecycleState
	}

	results, err := c.retriever.Retrieve(ctx, effectiveQuery, searchFilters, limit)
	if err != nil {
		return nil, err
	}

	items, err := c.explainResults(ctx, uow, effectiveQuery, results)
	if err != nil {
		return nil, err
	}

	// Query text stays out of the logs; sessions can carry sensitive search
	// criteria.
	c.sysLogger.Info("search", "Search completed", map[string]interface{}{
		"session_id":    sess.Id.String(),
		"history_turns": len(sess.QueryHistory),
		"result_count":  len(items),
	})

	return &dto.SearchResponse{
		Results:     items,
		ResultCount: len(items),
		SessionId:   sess.Id,
		Context:     sess.CurrentContext,
	}, nil
}

const maxQueryLength = 2000

// validateSearchRequest re-checks the payload invariants at the service
// boundary so callers other than the HTTP controller get the same guarantees.
func validateSearchRequest(req *dto.SearchRequest) error {
	if strings.TrimSpace(req.Query) == "" {
		return apperror.Validation("Search query must not be empty.")
	}
	if utf8.RuneCountInString(req.Query) > maxQueryLength {
		return apperror.Validation("Search query exceeds the maximum length.")
	}
	if req.Filters != nil && req.Filters.LifecycleState != nil {
		switch *req.Filters.LifecycleState {
		case constant.LifecycleActive, constant.LifecycleArchive:
		default:
			return apperror.Validation("Unknown lifecycle state filter.")
		}
	}
	return nil
}

// explainResults batch-loads the evidence sources for the whole result page
// and builds one explanation per hit. Every snippet is taken verbatim from
// stored fields or document text, never synthesized.
func (c *searchService) explainResults(ctx context.Context, uow unitofwork.UnitOfWork, effectiveQuery string, results []search.Result) ([]dto.SearchResultItem, error) {
	items := make([]dto.SearchResultItem, 0, len(results))
	if len(results) == 0 {
		return items, nil
	}

	ids := make([]uuid.UUID, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.CandidateId)
	}

	fieldsById, err := uow.DataRecordRepository().FieldsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	documentsById, err := uow.CandidateDocumentRepository().DocumentsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	terms := explain.ExtractQueryTerms(effectiveQuery)

	for _, r := range results {
		documents := make([]explain.Document, 0)
		for _, doc := range documentsById[r.CandidateId] {
			if doc.ExtractedText == "" {
				continue
			}
			documents = append(documents, explain.Document{
				Id:   doc.Id.String(),
				Text: doc.ExtractedText,
			})
		}

		explanation := explain.Build(terms, fieldsById[r.CandidateId], documents, r.Score)

		items = append(items, dto.SearchResultItem{
			CandidateId:   r.CandidateId,
			CandidateName: r.CandidateName,
			Score:         r.Score,
			SemanticScore: r.SemanticScore,
			LexicalScore:  r.LexicalScore,
			Explanation:   &explanation,
		})
	}

	return items, nil
}

func toHistoryFilters(filters *dto.SearchFilters) *entity.QueryHistoryFilters {
	if filters == nil {
		return nil
	}
	return &entity.QueryHistoryFilters{
		LifecycleState: filters.LifecycleState,
	}
}
