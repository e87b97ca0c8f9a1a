package kafka

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/climate-report-service/internal/config"
	"github.com/couchcryptid/climate-report-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	created := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)
	r := domain.Report{
		ID:        "RPT-0A1B2C3D",
		Location:  domain.Location{Lat: 22.5726, Lng: 88.3639, Address: "Esplanade, Kolkata"},
		Problems:  []domain.ReportProblem{{Type: domain.HighPollution, Severity: domain.SeverityHigh, AIDetected: true}},
		Status:    domain.StatusSubmitted,
		CreatedAt: created,
	}

	msg, err := serializeToMessage(r)
	require.NoError(t, err)

	assert.Equal(t, []byte("RPT-0A1B2C3D"), msg.Key)
	assert.Contains(t, string(msg.Value), `"type":"high_pollution"`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "report_status", msg.Headers[0].Key)
	assert.Equal(t, []byte("submitted"), msg.Headers[0].Value)
	assert.Equal(t, "created_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2026-02-10T14:30:00Z"), msg.Headers[1].Value)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, r.ID, decoded.ID)
	assert.Equal(t, r.Location, decoded.Location)
	assert.Equal(t, r.Problems, decoded.Problems)
}

func TestWriter_LoadBatchEmpty(t *testing.T) {
	cfg := &config.Config{KafkaBrokers: []string{"localhost:1"}, KafkaReportsTopic: "climate-reports"}
	w := NewWriter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, w.LoadBatch(context.Background(), nil))
}
