package services_test

import (
	"context"

	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func init() {
	logger.InitLogger("test")
}

func ptrString(s string) *string { return &s }

func ptrInt32(i int32) *int32 { return &i }

func ptrInt64(i int64) *int64 { return &i }

func ptrBool(b bool) *bool { return &b }

func ptrDec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func num(v int64) pgtype.Numeric {
	return helpers.DecimalToNumeric(decimal.NewFromInt(v))
}

// fakeTx runs the callback against the mock querier, recording commits
type fakeTx struct {
	q       db.Querier
	calls   int
	failErr error
}

func (f *fakeTx) RunInTx(_ context.Context, fn func(q db.Querier) error) error {
	f.calls++
	if f.failErr != nil {
		return f.failErr
	}
	return fn(f.q)
}
