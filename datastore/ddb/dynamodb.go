/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dddlib/datastore"
	"github.com/suparena/dddlib/errors"
	"github.com/suparena/dddlib/injector"
)

// EntityTypeAttribute is written on every item so a single table can hold
// several entity types.
const EntityTypeAttribute = "EntityType"

// DynamodbDataStore implements datastore.DataStore[T] on a DynamoDB table.
// Keys are derived from the IndexMap[T] registered in the injector.
type DynamodbDataStore[T any] struct {
	client    API
	tableName string
	registry  *injector.Registry
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T.
func NewDynamodbDataStore[T any](client API, tableName string, r *injector.Registry) *DynamodbDataStore[T] {
	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
		registry:  r,
	}
}

// TableName returns the table this store reads and writes.
func (d *DynamodbDataStore[T]) TableName() string { return d.tableName }

func (d *DynamodbDataStore[T]) indexMap() (datastore.IndexMap[T], error) {
	indexMap, ok := datastore.GetIndexMap[T](d.registry)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrNoIndexMap, entityName[T]())
	}
	return indexMap, nil
}

func (d *DynamodbDataStore[T]) keyFor(key string) (map[string]types.AttributeValue, error) {
	indexMap, err := d.indexMap()
	if err != nil {
		return nil, err
	}
	keyMap, err := primaryKey(expandStringKey(indexMap, key))
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}
	return keyMap, nil
}

// GetOne retrieves a single item by key. A missing item yields an error
// matching errors.ErrNotFound.
//
// key is substituted for every {Field} macro of the index map, so the item
// is only addressable when PK and SK are built from the same field (for
// example "USER#{ID}" / "PROFILE#{ID}"). Entities whose PK and SK use
// different fields must be read with QueryPartition instead.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	keyMap, err := d.keyFor(key)
	if err != nil {
		return nil, err
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(d.tableName),
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(entityName[T](), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores entity, populating PK, SK and any GSI attributes from the index map.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	item, _, err := d.item(entity)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Create is Put conditioned on attribute_not_exists(PK). An existing item
// with the same primary key yields an error matching errors.ErrAlreadyExists.
func (d *DynamodbDataStore[T]) Create(ctx context.Context, entity T) error {
	item, key, err := d.item(entity)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           aws.String(d.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return errors.NewAlreadyExistsError(entityName[T](), key)
		}
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// item marshals entity and adds the expanded index map attributes and the
// entity type. key is the "PK/SK" pair, for error reporting.
func (d *DynamodbDataStore[T]) item(entity T) (map[string]types.AttributeValue, string, error) {
	indexMap, err := d.indexMap()
	if err != nil {
		return nil, "", err
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := expandMacros(indexMap, entity)
	if err != nil {
		return nil, "", err
	}
	if _, err := primaryKey(expanded); err != nil {
		return nil, "", errors.NewValidationError("key", err.Error())
	}

	for attr, v := range expanded {
		av[attr] = &types.AttributeValueMemberS{Value: v}
	}
	av[EntityTypeAttribute] = &types.AttributeValueMemberS{Value: entityTypeName[T]()}
	return av, expanded["PK"] + "/" + expanded["SK"], nil
}

// Delete removes an item by key, addressed the same way as in GetOne.
// Deleting a missing item yields an error matching errors.ErrNotFound.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	keyMap, err := d.keyFor(key)
	if err != nil {
		return err
	}

	out, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:    aws.String(d.tableName),
		Key:          keyMap,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	if len(out.Attributes) == 0 {
		return errors.NewNotFoundError(entityName[T](), key)
	}
	return nil
}

// QueryPartition returns the items stored under partition key pk, in sort
// key order. A limit of zero means no limit.
func (d *DynamodbDataStore[T]) QueryPartition(ctx context.Context, pk string, limit int32) ([]T, error) {
	input := &sdk.QueryInput{
		TableName:              aws.String(d.tableName),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	out, err := d.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	results := make([]T, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal query results: %w", err)
	}
	return results, nil
}

func entityName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// entityTypeName is the bare type name, e.g. "Account".
func entityTypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
