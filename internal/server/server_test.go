package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-records-sync/internal/config"
	"github.com/MKhiriev/go-records-sync/internal/handler"
	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/internal/mock"
	"github.com/MKhiriev/go-records-sync/internal/service"
)

func newTestHandlers(t *testing.T, cfg config.Server) (*handler.Handlers, *mock.MockRecordService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordService(ctrl)

	h, err := handler.NewHandlers(&service.Services{RecordService: records}, cfg, logger.Nop())
	require.NoError(t, err)
	return h, records
}

func TestNewServer_NoAddresses(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, config.Workers{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_HTTPOnly(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}
	h, _ := newTestHandlers(t, cfg)

	srv, err := NewServer(h, cfg, config.Workers{}, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.NotNil(t, s.httpServer)
	assert.Nil(t, s.gRPCServer)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	h, records := newTestHandlers(t, cfg)
	pinged := make(chan struct{}, 1)
	records.EXPECT().Ping(gomock.Any()).DoAndReturn(func(context.Context) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	}).AnyTimes()

	srv, err := NewServer(h, cfg, config.Workers{HealthInterval: time.Hour}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// проба здоровья запускается сразу
	select {
	case <-pinged:
	case <-time.After(2 * time.Second):
		t.Fatal("health probe did not run")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunFailsOnBadAddress(t *testing.T) {
	cfg := config.Server{GRPCAddress: "256.0.0.1:bad"}
	h, records := newTestHandlers(t, cfg)
	records.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()

	srv, err := NewServer(h, cfg, config.Workers{HealthInterval: time.Hour}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}
