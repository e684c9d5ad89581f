package instrument

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"
)

// DynamoStore keeps custom instrument specs in a DynamoDB table keyed by
// name ("PK").
type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamoStore(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

// DialDynamo connects to endpoint, usually a local DynamoDB.
func DialDynamo(endpoint string, region string, table string) (*DynamoStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewDynamoStore(dynamodb.New(sess), table), nil
}

func (d *DynamoStore) List(ctx context.Context) ([]Spec, error) {
	var res []Spec
	var decodeErr error
	input := &dynamodb.ScanInput{TableName: aws.String(d.table)}
	err := d.client.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		var specs []Spec
		if err := dynamodbattribute.UnmarshalListOfMaps(page.Items, &specs); err != nil {
			decodeErr = err
			return false
		}
		res = append(res, specs...)
		return true
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan of %s failed", d.table)
	}
	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "could not decode instrument")
	}
	return res, nil
}

func (d *DynamoStore) Put(ctx context.Context, s Spec) error {
	item, err := dynamodbattribute.MarshalMap(s)
	if err != nil {
		return errors.Wrapf(err, "could not encode %q", s.Name)
	}
	_, err = d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return errors.Wrapf(err, "could not store %q", s.Name)
	}
	return nil
}

// Load replaces the instruments previously loaded from the table with its
// current contents. Catalog and local entries are left alone.
func (d *DynamoStore) Load(ctx context.Context, r *Registry) (int, error) {
	specs, err := d.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := r.ReplaceSource(SourceDynamo, specs, nil); err != nil {
		return 0, err
	}
	return len(specs), nil
}
