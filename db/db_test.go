package db

import (
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/strumsheet/model"
	"github.com/stretchr/testify/assert"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items map[string]map[string]*dynamodb.AttributeValue
	calls int
}

func (f *fakeDynamo) BatchGetItem(input *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error) {
	f.calls++
	out := &dynamodb.BatchGetItemOutput{Responses: map[string][]map[string]*dynamodb.AttributeValue{}}
	for table, ka := range input.RequestItems {
		for _, key := range ka.Keys {
			if item, ok := f.items[*key["PK"].S]; ok {
				out.Responses[table] = append(out.Responses[table], item)
			}
		}
	}
	return out, nil
}

func TestGetSongMetadatasBatches(t *testing.T) {
	fake := &fakeDynamo{items: map[string]map[string]*dynamodb.AttributeValue{
		"krovi": {
			"PK":     {S: aws.String("krovi")},
			"Title":  {S: aws.String("Gruppa Krovi")},
			"Artist": {S: aws.String("Kino")},
		},
		"untitled": {
			"PK": {S: aws.String("untitled")},
		},
	}}

	var ids []string
	for i := 0; i < 23; i++ {
		ids = append(ids, fmt.Sprintf("song-%v", i))
	}
	ids = append(ids, "krovi", "untitled")

	res, err := NewStore(fake, "strumsheet-metadata").GetSongMetadatas(ids)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(3, fake.calls)
	assert.Equal(map[string]model.SongMetadata{
		"krovi":    {Title: "Gruppa Krovi", Artist: "Kino"},
		"untitled": {},
	}, res)
}

func TestGetSongMetadatasEmpty(t *testing.T) {
	fake := &fakeDynamo{}
	res, err := NewStore(fake, "t").GetSongMetadatas(nil)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Empty(res)
	assert.Equal(0, fake.calls)
}
