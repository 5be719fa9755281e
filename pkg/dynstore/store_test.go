package dynstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	PK   string `dynamodbav:"PK"`
	SK   string `dynamodbav:"SK"`
	Name string `dynamodbav:"name"`
}

var testCfg = TableConfig{TableName: "test-table", HashKey: "PK", SortKey: "SK"}

func marshalItem(t *testing.T, item testItem) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(item)
	require.NoError(t, err)
	return av
}

func TestGet_Found(t *testing.T) {
	client := &MockClient{
		GetItemFn: func(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "test-table", *params.TableName)
			assert.Equal(t, &types.AttributeValueMemberS{Value: "ITEM#1"}, params.Key["PK"])
			assert.Equal(t, &types.AttributeValueMemberS{Value: "META"}, params.Key["SK"])
			return &dynamodb.GetItemOutput{Item: marshalItem(t, testItem{PK: "ITEM#1", SK: "META", Name: "one"})}, nil
		},
	}

	table := New[testItem](client, testCfg)
	item, err := table.Get(context.Background(), "ITEM#1", "META")

	require.NoError(t, err)
	assert.Equal(t, "one", item.Name)
}

func TestGet_Missing(t *testing.T) {
	client := &MockClient{
		GetItemFn: func(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}

	table := New[testItem](client, testCfg)
	item, err := table.Get(context.Background(), "ITEM#1", "META")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, item)
}

func TestGet_ClientError(t *testing.T) {
	boom := errors.New("throttled")
	client := &MockClient{
		GetItemFn: func(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return nil, boom
		},
	}

	table := New[testItem](client, testCfg)
	_, err := table.Get(context.Background(), "ITEM#1", "META")

	assert.ErrorIs(t, err, boom)
}

func TestPut(t *testing.T) {
	var captured map[string]types.AttributeValue
	client := &MockClient{
		PutItemFn: func(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			captured = params.Item
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	table := New[testItem](client, testCfg)
	err := table.Put(context.Background(), testItem{PK: "ITEM#2", SK: "META", Name: "two"})

	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "two"}, captured["name"])
}

func TestDelete(t *testing.T) {
	called := false
	client := &MockClient{
		DeleteItemFn: func(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			called = true
			assert.Equal(t, &types.AttributeValueMemberS{Value: "ITEM#3"}, params.Key["PK"])
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}

	table := New[testItem](client, testCfg)
	require.NoError(t, table.Delete(context.Background(), "ITEM#3", "META"))
	assert.True(t, called)
}

func TestQuery_IndexAndDescending(t *testing.T) {
	client := &MockClient{
		QueryFn: func(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, "name-index", *params.IndexName)
			assert.False(t, *params.ScanIndexForward)
			assert.NotNil(t, params.KeyConditionExpression)
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
				marshalItem(t, testItem{PK: "ITEM#1", SK: "META", Name: "one"}),
				marshalItem(t, testItem{PK: "ITEM#2", SK: "META", Name: "two"}),
			}}, nil
		},
	}

	table := New[testItem](client, testCfg)
	items, err := table.Query().
		Index("name-index").
		KeyEqual("name", "one").
		Descending().
		Exec(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Name)
}

func TestScan_NoFilterSkipsExpression(t *testing.T) {
	client := &MockClient{
		ScanFn: func(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			assert.Nil(t, params.FilterExpression)
			return &dynamodb.ScanOutput{}, nil
		},
	}

	table := New[testItem](client, testCfg)
	items, err := table.Scan().Exec(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestScan_WithFilter(t *testing.T) {
	client := &MockClient{
		ScanFn: func(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			require.NotNil(t, params.FilterExpression)
			assert.NotEmpty(t, params.ExpressionAttributeValues)
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
				marshalItem(t, testItem{PK: "ITEM#1", SK: "META", Name: "one"}),
			}}, nil
		},
	}

	table := New[testItem](client, testCfg)
	items, err := table.Scan().FilterEqual("name", "one").Exec(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestMockClient_DefaultsToNotFound(t *testing.T) {
	client := &MockClient{}

	_, err := client.Scan(context.Background(), &dynamodb.ScanInput{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.Query(context.Background(), &dynamodb.QueryInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}
