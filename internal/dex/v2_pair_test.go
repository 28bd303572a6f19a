package dex

import (
	"math/big"
	"testing"
)

func TestV2PairABIRoundTrip(t *testing.T) {
	pairABI, err := V2PairABI()
	if err != nil {
		t.Fatalf("abi parse: %v", err)
	}

	reserve0 := big.NewInt(0).Mul(big.NewInt(5_000_000), big.NewInt(1e9))
	reserve1 := big.NewInt(50_000_000)

	packed, err := pairABI.Methods["getReserves"].Outputs.Pack(reserve0, reserve1, uint32(1700000000))
	if err != nil {
		t.Fatalf("pack getReserves outputs: %v", err)
	}

	values, err := pairABI.Unpack("getReserves", packed)
	if err != nil {
		t.Fatalf("unpack getReserves: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("values: got %d want 3", len(values))
	}

	got0, err := asBigInt(values[0])
	if err != nil {
		t.Fatalf("reserve0: %v", err)
	}
	got1, err := asBigInt(values[1])
	if err != nil {
		t.Fatalf("reserve1: %v", err)
	}
	if got0.Cmp(reserve0) != 0 || got1.Cmp(reserve1) != 0 {
		t.Fatalf("reserves mismatch: %s/%s != %s/%s", got0, got1, reserve0, reserve1)
	}
}

func TestERC20ABIParses(t *testing.T) {
	erc20, err := ERC20ABI()
	if err != nil {
		t.Fatalf("abi parse: %v", err)
	}
	if _, ok := erc20.Methods["symbol"]; !ok {
		t.Fatalf("symbol method missing")
	}
	if _, ok := erc20.Methods["decimals"]; !ok {
		t.Fatalf("decimals method missing")
	}
}

func TestScaleReserve(t *testing.T) {
	wei := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	if got := scaleReserve(wei, 18); got != 1 {
		t.Fatalf("scale 1e18/18: got %v want 1", got)
	}
	if got := scaleReserve(big.NewInt(123_450_000), 8); got != 1.2345 {
		t.Fatalf("scale 8 decimals: got %v want 1.2345", got)
	}
	if got := scaleReserve(nil, 18); got != 0 {
		t.Fatalf("scale nil: got %v want 0", got)
	}
}
