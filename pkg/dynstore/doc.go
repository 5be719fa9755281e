// Package dynstore is a small typed layer over the DynamoDB SDK.
//
// It exposes a generic Table[T] with Get/Put/Delete by composite key and a
// fluent Builder for Query and Scan operations, including secondary-index
// queries and filter conditions via the expression package. Items marshal
// through dynamodbav struct tags.
//
// The Client interface mirrors the subset of the SDK the store uses, so
// repositories built on dynstore can be tested with MockClient and never
// touch the network.
package dynstore
