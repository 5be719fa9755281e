// dynstore/query.go
package dynstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Query starts a key-condition query (optionally against a GSI).
func (s *dynamoTable[T]) Query() *Builder[T] {
	return &Builder[T]{
		table:       s,
		scanForward: aws.Bool(true),
	}
}

// Scan starts a full-table scan with optional filter conditions.
func (s *dynamoTable[T]) Scan() *Builder[T] {
	return &Builder[T]{
		table:  s,
		isScan: true,
	}
}

func (b *Builder[T]) Index(name string) *Builder[T] {
	b.indexName = aws.String(name)
	return b
}

// Descending reverses the sort-key order of a query.
func (b *Builder[T]) Descending() *Builder[T] {
	b.scanForward = aws.Bool(false)
	return b
}

func (b *Builder[T]) KeyEqual(key string, value any) *Builder[T] {
	cond := expression.KeyEqual(expression.Key(key), expression.Value(value))
	if b.keyCond == nil {
		b.keyCond = &cond
	} else {
		tmp := b.keyCond.And(cond)
		b.keyCond = &tmp
	}
	return b
}

func (b *Builder[T]) FilterEqual(field string, value any) *Builder[T] {
	cond := expression.Equal(expression.Name(field), expression.Value(value))
	return b.addFilter(cond)
}

func (b *Builder[T]) FilterBeginsWith(field, prefix string) *Builder[T] {
	cond := expression.BeginsWith(expression.Name(field), prefix)
	return b.addFilter(cond)
}

func (b *Builder[T]) addFilter(cond expression.ConditionBuilder) *Builder[T] {
	if b.filterCond == nil {
		b.filterCond = &cond
	} else {
		tmp := b.filterCond.And(cond)
		b.filterCond = &tmp
	}
	return b
}

// Exec runs the assembled operation and unmarshals every returned item.
func (b *Builder[T]) Exec(ctx context.Context) ([]T, error) {
	builder := expression.NewBuilder()

	if b.keyCond != nil {
		builder = builder.WithKeyCondition(*b.keyCond)
	}
	if b.filterCond != nil {
		builder = builder.WithFilter(*b.filterCond)
	}

	hasExpr := b.keyCond != nil || b.filterCond != nil
	var expr expression.Expression
	if hasExpr {
		var err error
		expr, err = builder.Build()
		if err != nil {
			return nil, err
		}
	}

	if b.isScan || b.keyCond == nil {
		return b.execScan(ctx, expr)
	}
	return b.execQuery(ctx, expr)
}

func (b *Builder[T]) execQuery(ctx context.Context, expr expression.Expression) ([]T, error) {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(b.table.cfg.TableName),
		IndexName:                 b.indexName,
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          b.scanForward,
	}

	out, err := b.table.client.Query(ctx, input)
	if err != nil {
		return nil, err
	}
	return unmarshalItems[T](out.Items)
}

func (b *Builder[T]) execScan(ctx context.Context, expr expression.Expression) ([]T, error) {
	input := &dynamodb.ScanInput{
		TableName:                 aws.String(b.table.cfg.TableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	out, err := b.table.client.Scan(ctx, input)
	if err != nil {
		return nil, err
	}
	return unmarshalItems[T](out.Items)
}
