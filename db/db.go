package db

import (
	"github.com/jsphweid/strumsheet/model"
	"github.com/jsphweid/strumsheet/util"
	"github.com/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// keys per BatchGetItem call
const batchSize = 10

type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewStore(client dynamodbiface.DynamoDBAPI, table string) *Store {
	return &Store{client: client, table: table}
}

func Connect(endpoint string, table string) (*Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Could not create a new DynamoDB session")
	}
	return NewStore(dynamodb.New(sess), table), nil
}

func (s *Store) GetSongMetadatas(ids []string) (map[string]model.SongMetadata, error) {
	res := make(map[string]model.SongMetadata)

	for _, batch := range util.Chunk(ids, batchSize) {
		var keys []map[string]*dynamodb.AttributeValue
		for _, id := range batch {
			keys = append(keys, map[string]*dynamodb.AttributeValue{
				"PK": {S: aws.String(id)},
			})
		}

		input := &dynamodb.BatchGetItemInput{
			RequestItems: map[string]*dynamodb.KeysAndAttributes{
				s.table: {Keys: keys},
			},
		}
		out, err := s.client.BatchGetItem(input)
		if err != nil {
			return nil, errors.Wrap(err, "Error from DynamoDB")
		}

		for _, v := range out.Responses[s.table] {
			pk, ok := v["PK"]
			if !ok || pk.S == nil {
				continue
			}
			var m model.SongMetadata
			if title, ok := v["Title"]; ok && title.S != nil {
				m.Title = *title.S
			}
			if artist, ok := v["Artist"]; ok && artist.S != nil {
				m.Artist = *artist.S
			}
			res[*pk.S] = m
		}
	}

	return res, nil
}
