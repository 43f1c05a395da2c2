package store

import (
	"context"

	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/metrics"
)

const (
	operationGet = "get"
	operationPut = "put"
)

type instrumentedStore struct {
	next    Store
	otel    otel.Otel
	metrics metrics.Metrics
}

// Instrument wraps next with tracing spans and operation counters.
func Instrument(next Store, ot otel.Otel, m metrics.Metrics) Store {
	return &instrumentedStore{
		next:    next,
		otel:    ot,
		metrics: m,
	}
}

func (s *instrumentedStore) Driver() string {
	return s.next.Driver()
}

func (s *instrumentedStore) Get(ctx context.Context, collection string) (payload []byte, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: collection,
		constant.OtelDriverAttributeKey:     s.next.Driver(),
	})

	payload, found, err = s.next.Get(ctx, collection)
	s.metrics.ObserveStore(s.next.Driver(), operationGet, err)

	if err != nil {
		scope.TraceError(err)

		return nil, false, err
	}

	scope.SetAttribute(constant.OtelBytesAttributeKey, len(payload))

	return payload, found, nil
}

func (s *instrumentedStore) Put(ctx context.Context, collection string, payload []byte) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Put")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: collection,
		constant.OtelDriverAttributeKey:     s.next.Driver(),
		constant.OtelBytesAttributeKey:      len(payload),
	})

	err := s.next.Put(ctx, collection, payload)
	s.metrics.ObserveStore(s.next.Driver(), operationPut, err)

	if err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}
