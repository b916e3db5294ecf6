package searchindex

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	weaviate "github.com/weaviate/weaviate-go-client/v5/weaviate"
	filters "github.com/weaviate/weaviate-go-client/v5/weaviate/filters"
	gql "github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
)

const entryClass = "JournalEntry"

// weavIndex implements Index using the Weaviate Go client.
type weavIndex struct {
	client *weaviate.Client
}

// NewWeaviateIndex constructs an Index backed by Weaviate at baseURL.
// baseURL should be host:port (without scheme), e.g., "localhost:8081".
func NewWeaviateIndex(baseURL string) (Index, error) {
	cfg := weaviate.Config{Scheme: "http", Host: baseURL}
	cl, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &weavIndex{client: cl}, nil
}

// UpsertEntry stores one vector point. Entry ids are UUIDs, which Weaviate
// accepts as object ids directly.
func (w *weavIndex) UpsertEntry(ctx context.Context, entryID, userID string, vec []float32) error {
	if w == nil || w.client == nil {
		return fmt.Errorf("weaviate client not initialised")
	}
	props := map[string]interface{}{
		"entryId": entryID,
		"userId":  userID,
	}
	_, err := w.client.Data().Creator().
		WithClassName(entryClass).
		WithID(entryID).
		WithProperties(props).
		WithVector(vec).
		Do(ctx)
	return err
}

func (w *weavIndex) Search(ctx context.Context, userID string, vec []float32, topK int) ([]Hit, error) {
	near := w.client.GraphQL().NearVectorArgBuilder().WithVector(vec)
	where := filters.Where().WithPath([]string{"userId"}).WithOperator(filters.Equal).WithValueText(userID)

	resp, err := w.client.GraphQL().Get().
		WithClassName(entryClass).
		WithWhere(where).
		WithNearVector(near).
		WithLimit(topK).
		WithFields(
			gql.Field{Name: "entryId"},
			gql.Field{Name: "userId"},
			gql.Field{Name: "_additional", Fields: []gql.Field{{Name: "distance"}}},
		).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("weaviate graphql: %s", formatGraphQLErrors(resp.Errors))
	}

	// Guard against null or unexpected response shapes.
	getData, ok := resp.Data["Get"].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	val := getData[entryClass]
	if val == nil {
		return []Hit{}, nil
	}
	raw, ok := val.([]interface{})
	if !ok {
		return nil, nil
	}

	out := make([]Hit, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		id, _ := m["entryId"].(string)
		var distance float64
		if add, ok := m["_additional"].(map[string]interface{}); ok {
			switch v := add["distance"].(type) {
			case float64:
				distance = v
			case string:
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					distance = f
				}
			}
		}
		// Cosine distance -> similarity score.
		out = append(out, Hit{EntryID: id, Score: 1 - distance})
	}
	return out, nil
}

// HealthPing verifies the Weaviate instance is reachable and ready.
func (w *weavIndex) HealthPing(ctx context.Context) error {
	ready, err := w.client.Misc().ReadyChecker().Do(ctx)
	if err != nil {
		return err
	}
	if !ready {
		return fmt.Errorf("weaviate not ready")
	}
	return nil
}

// formatGraphQLErrors returns a compact string with messages extracted for
// logging.
func formatGraphQLErrors(errs interface{}) string {
	if b, err := json.Marshal(errs); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", errs)
}
