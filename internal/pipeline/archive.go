package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"todogist/internal/domain"
	"todogist/internal/todoist"
)

// PageFetcher fetches one page of archived items for a query, resuming from
// cursor when it is non-empty. It is the pipeline's only I/O capability;
// timeouts and retries belong to the implementation, not to the aggregation.
type PageFetcher interface {
	FetchArchivePage(ctx context.Context, q todoist.ArchiveQuery, cursor string) (todoist.ArchivePage, error)
}

// AggregateArchive fetches and flattens archived items for one project
// across three query dimensions: the whole project, every section in the
// section map (excluding the root sentinel), and every supplied ancestor
// item id. The per-dimension queries run concurrently and fail fast: the
// first fetch error cancels the rest and is returned with no partial result.
// Within one query, pages are fetched sequentially in cursor order.
//
// Each dimension's merged item list goes through Filter; category ids are
// discarded. No deduplication is applied across dimensions, so an item
// reachable through two of them appears twice.
func AggregateArchive(ctx context.Context, fetcher PageFetcher, projectID int64, sections domain.SectionMap, ancestorIDs []int64) ([]domain.Task, error) {
	queries := []todoist.ArchiveQuery{{Param: todoist.ParamProjectID, ID: projectID}}
	for id := range sections {
		if id == domain.RootSectionID {
			continue
		}
		queries = append(queries, todoist.ArchiveQuery{Param: todoist.ParamSectionID, ID: id})
	}
	for _, id := range ancestorIDs {
		queries = append(queries, todoist.ArchiveQuery{Param: todoist.ParamParentID, ID: id})
	}

	results := make([][]domain.Task, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			items, err := fetchAllPages(gctx, fetcher, q)
			if err != nil {
				return err
			}
			tasks, _ := Filter(items, sections)
			results[i] = tasks
			return nil
		})
	}
	// Fetch errors propagate as-is so callers see the collaborator's own
	// failure, not an aggregation wrapper.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Task
	for _, tasks := range results {
		all = append(all, tasks...)
	}
	return all, nil
}

// fetchAllPages follows one query's cursor chain to completion and merges
// the pages by concatenating their items.
func fetchAllPages(ctx context.Context, fetcher PageFetcher, q todoist.ArchiveQuery) ([]todoist.Item, error) {
	var (
		items  []todoist.Item
		cursor string
	)
	for {
		page, err := fetcher.FetchArchivePage(ctx, q, cursor)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
		if !page.HasMore {
			return items, nil
		}
		cursor = page.NextCursor
	}
}
