package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/ougirez/solarscope/internal/domain"
	"github.com/ougirez/solarscope/internal/filter"
	"github.com/ougirez/solarscope/internal/pkg/constants"
	"github.com/ougirez/solarscope/internal/pkg/logger"
	"github.com/ougirez/solarscope/internal/pkg/metrics"
	"github.com/tidwall/gjson"
)

var errMalformedSelection = errors.New("malformed filter selection")

func storageKey(sid string) string {
	return sid + "/" + constants.FilterStorageKey
}

// persist writes sel for sid. Failures are logged and never reach the caller.
func (s *Service) persist(ctx context.Context, sid string, sel domain.FilterSelection) {
	raw, err := sonic.Marshal(sel)
	if err != nil {
		metrics.PersistenceErrors.WithLabelValues("encode").Inc()
		logger.Errorf(ctx, "sonic.Marshal filters: %s", err.Error())
		return
	}

	if err = s.store.Set(ctx, storageKey(sid), raw); err != nil {
		metrics.PersistenceErrors.WithLabelValues("write").Inc()
		logger.Errorf(ctx, "store.Set filters: %s", err.Error())
	}
}

// restore reads the persisted selection of sid. A missing, unreadable or malformed entry yields
// nil and is logged.
func (s *Service) restore(ctx context.Context, sid string) domain.FilterSelection {
	raw, err := s.store.Get(ctx, storageKey(sid))
	if err != nil {
		if !errors.Is(err, constants.ErrDBNotFound) {
			metrics.PersistenceErrors.WithLabelValues("read").Inc()
			logger.Errorf(ctx, "store.Get filters: %s", err.Error())
		}
		return nil
	}

	sel, err := decodeSelection(raw)
	if err != nil {
		metrics.PersistenceErrors.WithLabelValues("decode").Inc()
		logger.Errorf(ctx, "decode filters: %s", err.Error())
		return nil
	}

	return sel
}

// decodeSelection parses a persisted selection. Known keys keep only values of their declared
// shape; list items that are not strings are dropped.
func decodeSelection(raw []byte) (domain.FilterSelection, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errMalformedSelection
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: expected object, got %s", errMalformedSelection, doc.Type.String())
	}

	sel := domain.FilterSelection{}
	doc.ForEach(func(key, value gjson.Result) bool {
		kind, ok := filter.KindOf(filter.Category(key.String()))
		if !ok {
			sel[key.String()] = value.Value()
			return true
		}

		switch kind {
		case filter.KindBool:
			if value.IsBool() {
				sel[key.String()] = value.Bool()
			}
		case filter.KindList:
			if value.IsArray() {
				items := make([]string, 0)
				for _, item := range value.Array() {
					if item.Type == gjson.String {
						items = append(items, item.String())
					}
				}
				sel[key.String()] = items
			}
		default:
			if value.Type == gjson.String {
				sel[key.String()] = value.String()
			}
		}
		return true
	})

	return sel, nil
}
