package push

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"marca/internal/config"
	cache_utils "marca/internal/util/cache"
)

// PushWorkerService drains the shared push queue and relays messages to the
// push gateway. Any API node can enqueue, but StartWorkers must run on ONE
// instance only so messages are not delivered twice.
type PushWorkerService struct {
	deviceTokenRepository *DeviceTokenRepository
	queueService          *cache_utils.ValkeyQueueService
	httpClient            *http.Client
	logger                *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

const (
	dispatchInterval  = 1 * time.Second
	dispatchBatchSize = 100
	relayTimeout      = 10 * time.Second
)

func (s *PushWorkerService) StartWorkers() {
	relayURL := config.GetEnv().PushRelayURL
	if relayURL == "" {
		s.logger.Info("PUSH_RELAY_URL not configured, push dispatch disabled")
		return
	}

	s.ctx, s.cancel = context.WithCancel(config.GetShutdownContext())

	s.wg.Add(1)
	go s.dispatchWorker(relayURL)

	s.logger.Info("Push dispatch worker started",
		slog.Duration("interval", dispatchInterval),
		slog.Int("batchSize", dispatchBatchSize))
}

func (s *PushWorkerService) StopWorkers() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	s.wg.Wait()
}

func (s *PushWorkerService) dispatchWorker(relayURL string) {
	defer s.wg.Done()

	ticker := time.NewTicker(dispatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.dispatchBatch(relayURL)
		}
	}
}

func (s *PushWorkerService) dispatchBatch(relayURL string) {
	items, err := s.queueService.DequeueBatch(pushQueueKey, dispatchBatchSize)
	if err != nil {
		s.logger.Error("failed to dequeue push messages", slog.String("error", err.Error()))
		return
	}

	for _, item := range items {
		var message PushMessage
		if err := json.Unmarshal(item, &message); err != nil {
			s.logger.Error("failed to unmarshal push message", slog.String("error", err.Error()))
			continue
		}

		s.relayMessage(relayURL, &message, item)
	}
}

// relayMessage POSTs one message to the gateway. No retries: a failed push
// is dropped, the notification row is still the source of truth. A 410 from
// the gateway means the device token is dead and gets removed.
func (s *PushWorkerService) relayMessage(relayURL string, message *PushMessage, raw []byte) {
	ctx, cancel := context.WithTimeout(s.ctx, relayTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, relayURL, bytes.NewReader(raw))
	if err != nil {
		s.logger.Error("failed to build push relay request", slog.String("error", err.Error()))
		return
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := s.httpClient.Do(request)
	if err != nil {
		s.logger.Error("failed to relay push message",
			slog.String("userId", message.UserID.String()),
			slog.String("error", err.Error()))
		return
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode == http.StatusGone {
		if err := s.deviceTokenRepository.DeleteTokenValue(message.Token); err != nil {
			s.logger.Error("failed to remove invalid device token", slog.String("error", err.Error()))
		}
		return
	}

	if response.StatusCode >= http.StatusBadRequest {
		s.logger.Error("push relay rejected message",
			slog.Int("status", response.StatusCode),
			slog.String("userId", message.UserID.String()))
	}
}
