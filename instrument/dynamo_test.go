package instrument

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	pages [][]map[string]*dynamodb.AttributeValue
	puts  []*dynamodb.PutItemInput
}

func (f *fakeDynamo) ScanPagesWithContext(ctx aws.Context, input *dynamodb.ScanInput, fn func(*dynamodb.ScanOutput, bool) bool, opts ...request.Option) error {
	for i, items := range f.pages {
		if !fn(&dynamodb.ScanOutput{Items: items}, i == len(f.pages)-1) {
			break
		}
	}
	return nil
}

func (f *fakeDynamo) PutItemWithContext(ctx aws.Context, input *dynamodb.PutItemInput, opts ...request.Option) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, input)
	f.pages = append(f.pages, []map[string]*dynamodb.AttributeValue{input.Item})
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoPutAndList(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	fake := &fakeDynamo{}
	store := NewDynamoStore(fake, "fretdex-instruments")

	require.Nil(t, store.Put(ctx, Spec{Name: "Nashville", Tuning: []string{"E", "A", "D", "G", "B", "E"}}))
	require.Nil(t, store.Put(ctx, Spec{Name: "Open C", Tuning: []string{"C", "G", "C", "G", "C", "E"}, Description: "big"}))

	assert.Equal("fretdex-instruments", *fake.puts[0].TableName)
	assert.Equal("Nashville", *fake.puts[0].Item["PK"].S)
	_, hasDescription := fake.puts[0].Item["Description"]
	assert.False(hasDescription)

	specs, err := store.List(ctx)
	require.Nil(t, err)
	assert.Equal([]Spec{
		{Name: "Nashville", Tuning: []string{"E", "A", "D", "G", "B", "E"}},
		{Name: "Open C", Tuning: []string{"C", "G", "C", "G", "C", "E"}, Description: "big"},
	}, specs)
}

func TestDynamoLoadKeepsGrids(t *testing.T) {
	assert := assert.New(t)
	item, err := dynamodbattribute.MarshalMap(Spec{Name: "Open E", Tuning: []string{"E", "B", "E", "G#", "B", "E"}})
	require.Nil(t, err)
	store := NewDynamoStore(&fakeDynamo{pages: [][]map[string]*dynamodb.AttributeValue{{item}}}, "t")

	r := NewRegistry()
	require.Nil(t, r.AddGrid(Grid{Name: "Pads", Rows: 2, Cols: 2, RowStep: 1, ColStep: 1}))

	n, err := store.Load(context.Background(), r)
	require.Nil(t, err)
	assert.Equal(1, n)
	_, err = r.Get("Open E")
	assert.Nil(err)
	_, err = r.Grid("Pads")
	assert.Nil(err)
}

func TestDynamoLoadKeepsCatalogInstruments(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()
	require.Nil(t, r.Apply(Catalog{Instruments: []Spec{{Name: "Open G", Tuning: []string{"D", "G", "D", "G", "B", "D"}}}}))

	item, err := dynamodbattribute.MarshalMap(Spec{Name: "Open E", Tuning: []string{"E", "B", "E", "G#", "B", "E"}})
	require.Nil(t, err)
	fake := &fakeDynamo{pages: [][]map[string]*dynamodb.AttributeValue{{item}}}
	store := NewDynamoStore(fake, "t")

	_, err = store.Load(context.Background(), r)
	require.Nil(t, err)
	_, err = r.Get("Open G")
	assert.Nil(err)
	_, err = r.Get("Open E")
	assert.Nil(err)

	// the catalog file never picks up table entries
	assert.Equal([]string{"Open G"}, specNames(r.Catalog().Instruments))

	// an emptied table only removes what came from it
	fake.pages = nil
	_, err = store.Load(context.Background(), r)
	require.Nil(t, err)
	_, err = r.Get("Open E")
	assert.NotNil(err)
	_, err = r.Get("Open G")
	assert.Nil(err)

	// and a catalog reload keeps table entries
	fake.pages = [][]map[string]*dynamodb.AttributeValue{{item}}
	_, err = store.Load(context.Background(), r)
	require.Nil(t, err)
	require.Nil(t, r.Apply(Catalog{}))
	assert.Equal([]string{"Open E"}, specNames(r.Custom()))
}

func specNames(specs []Spec) []string {
	var res []string
	for _, s := range specs {
		res = append(res, s.Name)
	}
	return res
}
