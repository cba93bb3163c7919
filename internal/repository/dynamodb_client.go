package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"fitlife-assistant/internal/domain"
)

const (
	skPrefixMsg = "MSG#"

	// sortTimeLayout is fixed width so lexical order matches time order.
	sortTimeLayout = "2006-01-02T15:04:05.000000000Z"

	// MaxHistoryLimit caps how many messages one History call reads.
	MaxHistoryLimit = 1000
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
type dynamodbAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Client stores conversations in a single DynamoDB table.
type Client struct {
	api       dynamodbAPI
	tableName string
}

var _ Store = (*Client)(nil)

func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName}, nil
}

func convPK(conversationID string) string {
	return "CONV#" + conversationID
}

// msgSK orders by creation time; the uuid suffix keeps two appends in the
// same nanosecond distinct.
func msgSK(ts time.Time, suffix string) string {
	return skPrefixMsg + ts.UTC().Format(sortTimeLayout) + "#" + suffix
}

var newSuffix = func() string {
	return uuid.NewString()
}

// Append writes msg as a new item. Existing items are never overwritten.
func (c *Client) Append(ctx context.Context, conversationID string, msg domain.Message) error {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return errors.New("repository: Append: conversation id is required")
	}
	if msg.Role != domain.RoleUser && msg.Role != domain.RoleAssistant {
		return fmt.Errorf("repository: Append: unknown role %q", msg.Role)
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	_, err := c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(c.tableName),
		Item:                messageItem(conversationID, msg),
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		return fmt.Errorf("repository: Append: %w", err)
	}
	return nil
}

// History returns up to limit of the most recent messages, oldest first.
func (c *Client) History(ctx context.Context, conversationID string, limit int) ([]domain.Message, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(c.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: convPK(conversationID)},
			":prefix": &types.AttributeValueMemberS{Value: skPrefixMsg},
		},
		// Newest first so the limit keeps the most recent messages.
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(min(limit, MaxHistoryLimit)))
	}

	out, err := c.api.Query(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("repository: History query: %w", err)
	}

	msgs := make([]domain.Message, 0, len(out.Items))
	for _, item := range out.Items {
		msg, err := itemToMessage(item)
		if err != nil {
			return nil, fmt.Errorf("repository: History unmarshal: %w", err)
		}
		msgs = append(msgs, msg)
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func messageItem(conversationID string, msg domain.Message) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":             &types.AttributeValueMemberS{Value: convPK(conversationID)},
		"SK":             &types.AttributeValueMemberS{Value: msgSK(msg.CreatedAt, newSuffix())},
		"conversationId": &types.AttributeValueMemberS{Value: conversationID},
		"role":           &types.AttributeValueMemberS{Value: string(msg.Role)},
		"text":           &types.AttributeValueMemberS{Value: msg.Text},
		"createdAt":      &types.AttributeValueMemberS{Value: msg.CreatedAt.UTC().Format(time.RFC3339Nano)},
	}
}

func itemToMessage(item map[string]types.AttributeValue) (domain.Message, error) {
	role, err := strAttr(item, "role")
	if err != nil {
		return domain.Message{}, err
	}
	text, err := strAttr(item, "text")
	if err != nil {
		return domain.Message{}, err
	}
	created, err := strAttr(item, "createdAt")
	if err != nil {
		return domain.Message{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return domain.Message{}, fmt.Errorf("repository: parse attribute %q: %w", "createdAt", err)
	}
	return domain.Message{
		Role:      domain.Role(role),
		Text:      text,
		CreatedAt: ts,
	}, nil
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}
