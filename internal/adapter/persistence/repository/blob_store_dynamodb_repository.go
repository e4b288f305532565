package repository

import (
	"context"

	"big_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBlobsTableName = "user_blobs"

type blobItem struct {
	OwnerID string `dynamodbav:"owner_id"`
	BlobKey string `dynamodbav:"blob_key"`
	Payload string `dynamodbav:"payload"`
}

// BlobStoreDynamoRepository persists keyed JSON documents in DynamoDB.
//
// Table requirements:
//   - PK: owner_id (string)
//   - SK: blob_key (string)
//
// Each item holds one whole collection as a JSON string; writes replace the
// item unconditionally (last writer wins).

type BlobStoreDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBlobStore = (*BlobStoreDynamoRepository)(nil)

func NewBlobStoreDynamoRepository(ddb *dynamodb.Client) *BlobStoreDynamoRepository {
	return &BlobStoreDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BLOBS_TABLE", defaultBlobsTableName),
	}
}

func (r *BlobStoreDynamoRepository) Get(ctx context.Context, ownerID, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
			"blob_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it blobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Payload), nil
}

func (r *BlobStoreDynamoRepository) Set(ctx context.Context, ownerID, key string, payload []byte) error {
	av, err := attributevalue.MarshalMap(blobItem{
		OwnerID: ownerID,
		BlobKey: key,
		Payload: string(payload),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *BlobStoreDynamoRepository) Delete(ctx context.Context, ownerID, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
			"blob_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
