package docstore

import (
	"context"
	"errors"

	"github.com/janisto/portfolio-api/internal/platform/metrics"
)

type instrumentedCollection[T any] struct {
	next Collection[T]
	name string
}

func (c *instrumentedCollection[T]) observe(op string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.StoreOperations.WithLabelValues(c.name, op, result).Inc()
}

func (c *instrumentedCollection[T]) Find(ctx context.Context, q Query) ([]T, error) {
	out, err := c.next.Find(ctx, q)
	c.observe("find", err)
	return out, err
}

func (c *instrumentedCollection[T]) FindOne(ctx context.Context, filters ...Filter) (*T, error) {
	out, err := c.next.FindOne(ctx, filters...)
	c.observe("find_one", err)
	return out, err
}

func (c *instrumentedCollection[T]) Insert(ctx context.Context, id string, doc T) error {
	err := c.next.Insert(ctx, id, doc)
	c.observe("insert", err)
	return err
}

func (c *instrumentedCollection[T]) Update(ctx context.Context, filters []Filter, fields Fields) error {
	err := c.next.Update(ctx, filters, fields)
	c.observe("update", err)
	return err
}

func (c *instrumentedCollection[T]) Delete(ctx context.Context, filters ...Filter) error {
	err := c.next.Delete(ctx, filters...)
	c.observe("delete", err)
	return err
}

func (c *instrumentedCollection[T]) Clear(ctx context.Context) error {
	err := c.next.Clear(ctx)
	c.observe("clear", err)
	return err
}
