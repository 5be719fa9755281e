package store

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/pkg/dynstore"
)

func TestSubscribers_Subscribe_LowercasesAndActivates(t *testing.T) {
	var written subscriberRecord
	client := &dynstore.MockClient{
		PutItemFn: func(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			require.NoError(t, attributevalue.UnmarshalMap(params.Item, &written))
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	err := New(client, testTables).Subscribers.Subscribe(context.Background(), "Jane.Doe@Example.COM", "")

	require.NoError(t, err)
	assert.Equal(t, "SUBSCRIBER#jane.doe@example.com", written.PK)
	assert.Equal(t, "jane.doe@example.com", written.Email)
	assert.Equal(t, models.SubscriberActive, written.Status)
	assert.Equal(t, "website", written.Source)
	assert.NotEmpty(t, written.SubscribedAt)
}

func TestSubscribers_Unsubscribe_KeepsRecord(t *testing.T) {
	var written subscriberRecord
	client := &dynstore.MockClient{
		GetItemFn: func(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: marshalRecord(t, subscriberRecord{
				PK: "SUBSCRIBER#jane@example.com", SK: "META",
				Subscriber: models.Subscriber{Email: "jane@example.com", Status: models.SubscriberActive, Source: "website", SubscribedAt: "2026-01-01T00:00:00Z"},
			})}, nil
		},
		PutItemFn: func(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			require.NoError(t, attributevalue.UnmarshalMap(params.Item, &written))
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	err := New(client, testTables).Subscribers.Unsubscribe(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.SubscriberUnsubscribed, written.Status)
	// subscription metadata survives the status flip
	assert.Equal(t, "2026-01-01T00:00:00Z", written.SubscribedAt)
}

func TestSubscribers_Unsubscribe_Missing(t *testing.T) {
	client := &dynstore.MockClient{
		GetItemFn: func(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}

	err := New(client, testTables).Subscribers.Unsubscribe(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscribers_Delete_LowercasesKey(t *testing.T) {
	deleted := ""
	client := &dynstore.MockClient{
		GetItemFn: func(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: marshalRecord(t, subscriberRecord{
				PK: "SUBSCRIBER#jane@example.com", SK: "META",
				Subscriber: models.Subscriber{Email: "jane@example.com"},
			})}, nil
		},
		DeleteItemFn: func(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			deleted = params.Key["PK"].(*types.AttributeValueMemberS).Value
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}

	err := New(client, testTables).Subscribers.Delete(context.Background(), "Jane@Example.com")

	require.NoError(t, err)
	assert.Equal(t, "SUBSCRIBER#jane@example.com", deleted)
}
