package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/sojin-dev/maumlog/internal/models"
)

var ErrNotFound = errors.New("entry not found")

// DiaryStore persists diary entries in a DynamoDB table keyed by entry id.
type DiaryStore struct {
	client *dynamodb.Client
	table  string
}

func NewDiaryStore(client *dynamodb.Client, table string) *DiaryStore {
	return &DiaryStore{client: client, table: table}
}

func (s *DiaryStore) CreateEntry(ctx context.Context, entry models.DiaryEntry) error {
	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("[DiaryStore] failed to marshal entry: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DiaryStore] failed to store entry: %w", err)
	}

	slog.Info("[DiaryStore] Stored entry",
		slog.String("entry_id", entry.ID),
		slog.String("emotion", entry.Emotion))
	return nil
}

// ListEntries returns all of one user's entries, newest first.
func (s *DiaryStore) ListEntries(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.table),
		FilterExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	}

	var entries []models.DiaryEntry
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DiaryStore] scan for entries failed: %w", err)
		}

		var page []models.DiaryEntry
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("[DiaryStore] failed to unmarshal entries: %w", err)
		}
		entries = append(entries, page...)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	slog.Info("[DiaryStore] Retrieved entries", slog.Int("count", len(entries)))
	return entries, nil
}

func (s *DiaryStore) GetEntry(ctx context.Context, id string) (models.DiaryEntry, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("[DiaryStore] failed to get entry: %w", err)
	}
	if out.Item == nil {
		return models.DiaryEntry{}, ErrNotFound
	}

	var entry models.DiaryEntry
	if err := attributevalue.UnmarshalMap(out.Item, &entry); err != nil {
		return models.DiaryEntry{}, fmt.Errorf("[DiaryStore] failed to unmarshal entry: %w", err)
	}
	return entry, nil
}

// UpdateEntry overwrites an existing entry. The caller is responsible for
// ownership checks before calling.
func (s *DiaryStore) UpdateEntry(ctx context.Context, entry models.DiaryEntry) error {
	return s.CreateEntry(ctx, entry)
}

func (s *DiaryStore) DeleteEntry(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("[DiaryStore] failed to delete entry: %w", err)
	}

	slog.Info("[DiaryStore] Deleted entry", slog.String("entry_id", id))
	return nil
}
