package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSimulationRecordJSONRoundTrip(t *testing.T) {
	original := SimulationRecord{
		TokenSymbol:        "HEX",
		TokenAddress:       "0x2b591e99afE9f32eAA6214f7B7629768c40Eeb39",
		Action:             ActionBuy,
		TotalLiquidityUSD:  100_000,
		ReserveQuoteBefore: 50_000,
		ReserveBaseBefore:  5_000_000,
		ReserveQuoteAfter:  60_000,
		ReserveBaseAfter:   4_166_666.67,
		AmountIn:           10_000,
		AmountOut:          833_333.33,
		OldPrice:           0.01,
		NewPrice:           0.0144,
		PriceChangeRatio:   1.44,
		SlippagePercent:    16.666,
		XFactor:            1.44,
		SimulatedAt:        "2024-01-01T00:00:00Z",
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded SimulationRecord
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", original, decoded)
	}
}
