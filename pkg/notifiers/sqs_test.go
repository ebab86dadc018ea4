package notifiers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSQSNotifierSendSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	sink := &sqsNotifier{
		id:       "queue",
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	err := sink.Notify(context.Background(), Message{Kind: KindScoreboard, Text: "digest"})
	if err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if client.input == nil {
		t.Fatal("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://example.com/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["kind"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "scoreboard" {
		t.Fatalf("kind attribute missing or wrong: %#v", attr)
	}
	if client.input.MessageBody == nil || !strings.Contains(aws.ToString(client.input.MessageBody), `"kind":"scoreboard"`) {
		t.Fatalf("MessageBody missing kind: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSNotifierSendError(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("boom")}
	sink := &sqsNotifier{
		id:       "queue",
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	if err := sink.Notify(context.Background(), Message{Text: "x"}); err == nil {
		t.Fatal("expected error from Notify")
	}
}
