// v1
// internal/transport/kafka_test.go
package transport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (r *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, msgs...)
	return nil
}

func (r *recordingWriter) Close() error {
	r.closed = true
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaPublishMapsTopicSeparators(t *testing.T) {
	writer := &recordingWriter{}
	pub := newKafkaPublisherWithWriter(writer, writer, testLogger())

	payload := []byte(`{"room":"24546"}`)
	if err := pub.Publish(context.Background(), "student/CASA0019/studyspace/24546/timeline", payload); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if len(writer.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(writer.msgs))
	}
	msg := writer.msgs[0]
	if msg.Topic != "student.CASA0019.studyspace.24546.timeline" {
		t.Fatalf("topic not sanitised: got %q", msg.Topic)
	}
	if string(msg.Key) != "student/CASA0019/studyspace/24546/timeline" {
		t.Fatalf("key should carry the logical topic, got %q", string(msg.Key))
	}
	if string(msg.Value) != string(payload) {
		t.Fatalf("payload mismatch: got %q", string(msg.Value))
	}
}

func TestKafkaPublishWrapsWriterError(t *testing.T) {
	errBoom := errors.New("broker gone")
	writer := &recordingWriter{err: errBoom}
	pub := newKafkaPublisherWithWriter(writer, writer, testLogger())

	err := pub.Publish(context.Background(), "a/b", []byte(`x`))
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped writer error, got %v", err)
	}
}

func TestKafkaCloseClosesWriter(t *testing.T) {
	writer := &recordingWriter{}
	pub := newKafkaPublisherWithWriter(writer, writer, testLogger())

	if err := pub.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if !writer.closed {
		t.Fatal("expected underlying writer to be closed")
	}
}
