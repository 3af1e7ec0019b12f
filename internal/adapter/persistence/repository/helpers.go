package repository

import (
	"os"
	"time"

	"orderdesk/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// statusUpdateItem is the stored form of a StatusUpdate history entry.
type statusUpdateItem struct {
	NewStatus string `dynamodbav:"new_status"`
	When      string `dynamodbav:"when"`
	By        string `dynamodbav:"by"`
	Comment   string `dynamodbav:"comment"`
}

func toStatusUpdateItems(entries []entities.StatusUpdate) []statusUpdateItem {
	items := make([]statusUpdateItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, statusUpdateItem{
			NewStatus: e.NewStatus,
			When:      e.When.UTC().Format(time.RFC3339Nano),
			By:        e.By,
			Comment:   e.Comment,
		})
	}
	return items
}

func fromStatusUpdateItems(items []statusUpdateItem) []entities.StatusUpdate {
	entries := make([]entities.StatusUpdate, 0, len(items))
	for _, it := range items {
		when, _ := time.Parse(time.RFC3339Nano, it.When)
		entries = append(entries, entities.StatusUpdate{
			NewStatus: it.NewStatus,
			When:      when,
			By:        it.By,
			Comment:   it.Comment,
		})
	}
	return entries
}

// historyAppendValue marshals a single history entry into the one-element
// list value consumed by list_append.
func historyAppendValue(entry entities.StatusUpdate) (types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(statusUpdateItem{
		NewStatus: entry.NewStatus,
		When:      entry.When.UTC().Format(time.RFC3339Nano),
		By:        entry.By,
		Comment:   entry.Comment,
	})
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberL{
		Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: av}},
	}, nil
}
