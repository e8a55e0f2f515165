package clickhouse

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

func parseHash(s string) (chainhash.Hash, error) {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("parse hash %q: %w", s, err)
	}
	return *hash, nil
}

func hashStrings(hashes []chainhash.Hash) []string {
	out := make([]string, 0, len(hashes))
	for _, h := range hashes {
		out = append(out, h.String())
	}
	return out
}

func encodeWitness(witness [][]byte) []string {
	out := make([]string, 0, len(witness))
	for _, item := range witness {
		out = append(out, hex.EncodeToString(item))
	}
	return out
}

// statusesAtLeast lists the stored statuses that satisfy status.
func statusesAtLeast(status model.BlockStatus) []string {
	var out []string
	for _, s := range []model.BlockStatus{model.BlockHeader, model.BlockValidated} {
		if s.AtLeast(status) {
			out = append(out, string(s))
		}
	}
	return out
}

func uint64s[T ~uint64](ids []T) []uint64 {
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		out = append(out, uint64(id))
	}
	return out
}
