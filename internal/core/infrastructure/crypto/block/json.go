package block

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/nanoblock/nanogo/pkg/types"
)

// fieldPair is one already-JSON-encoded "key":value entry, kept in a
// slice rather than a map so ToJSON can emit them in the reference
// node's exact order instead of Go's alphabetical map order.
type fieldPair struct {
	key   string
	value string
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func hexUpper(b [32]byte) string {
	return strings.ToUpper(hex.EncodeToString(b[:]))
}

func workHex(v uint64) string {
	return fmt.Sprintf("%016x", v)
}

func buildObject(pairs []fieldPair) []byte {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(quote(p.key))
		sb.WriteByte(':')
		sb.WriteString(p.value)
	}
	sb.WriteByte('}')
	return []byte(sb.String())
}

// ToJSON renders this block using the reference node's exact key order,
// hex case, and decimal balance formatting for its kind. The block must
// carry every field its kind requires, plus a signature and work value.
func (b *Block) ToJSON() ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if missing := b.missingRequiredFields(); len(missing) > 0 {
		return nil, fmt.Errorf("block: cannot serialize, missing fields %v: %w", missing, types.ErrInvalidBlock)
	}
	if b.signature == nil {
		return nil, fmt.Errorf("block: cannot serialize an unsigned block: %w", types.ErrInvalidBlock)
	}
	if b.work == nil {
		return nil, fmt.Errorf("block: cannot serialize a block with no work: %w", types.ErrInvalidBlock)
	}

	sigHex := quote(strings.ToUpper(hex.EncodeToString(b.signature)))
	workField := quote(workHex(*b.work))

	pairs := []fieldPair{{"type", quote(b.kind.String())}}

	switch b.kind {
	case KindState:
		accountAddr, err := b.deps.address.PublicKeyToAddress(b.account[:], "")
		if err != nil {
			return nil, fmt.Errorf("block: encode account: %w", err)
		}
		repAddr, err := b.deps.address.PublicKeyToAddress(b.representative[:], "")
		if err != nil {
			return nil, fmt.Errorf("block: encode representative: %w", err)
		}
		linkAsAccount, err := b.deps.address.PublicKeyToAddress(b.link[:], "")
		if err != nil {
			return nil, fmt.Errorf("block: encode link_as_account: %w", err)
		}
		pairs = append(pairs,
			fieldPair{"account", quote(accountAddr)},
			fieldPair{"previous", quote(hexUpper(*b.previous))},
			fieldPair{"representative", quote(repAddr)},
			fieldPair{"balance", quote(b.balance.String())},
			fieldPair{"link", quote(hexUpper(*b.link))},
			fieldPair{"link_as_account", quote(linkAsAccount)},
			fieldPair{"signature", sigHex},
			fieldPair{"work", workField},
		)
	case KindSend:
		destAddr, err := b.deps.address.PublicKeyToAddress(b.destination[:], "")
		if err != nil {
			return nil, fmt.Errorf("block: encode destination: %w", err)
		}
		pairs = append(pairs,
			fieldPair{"previous", quote(hexUpper(*b.previous))},
			fieldPair{"destination", quote(destAddr)},
			fieldPair{"balance", quote(b.balance.String())},
			fieldPair{"work", workField},
			fieldPair{"signature", sigHex},
		)
	case KindReceive:
		pairs = append(pairs,
			fieldPair{"previous", quote(hexUpper(*b.previous))},
			fieldPair{"source", quote(hexUpper(*b.source))},
			fieldPair{"work", workField},
			fieldPair{"signature", sigHex},
		)
	case KindOpen:
		repAddr, err := b.deps.address.PublicKeyToAddress(b.representative[:], "")
		if err != nil {
			return nil, fmt.Errorf("block: encode representative: %w", err)
		}
		accountAddr, err := b.deps.address.PublicKeyToAddress(b.account[:], "")
		if err != nil {
			return nil, fmt.Errorf("block: encode account: %w", err)
		}
		pairs = append(pairs,
			fieldPair{"source", quote(hexUpper(*b.source))},
			fieldPair{"representative", quote(repAddr)},
			fieldPair{"account", quote(accountAddr)},
			fieldPair{"work", workField},
			fieldPair{"signature", sigHex},
		)
	case KindChange:
		repAddr, err := b.deps.address.PublicKeyToAddress(b.representative[:], "")
		if err != nil {
			return nil, fmt.Errorf("block: encode representative: %w", err)
		}
		pairs = append(pairs,
			fieldPair{"previous", quote(hexUpper(*b.previous))},
			fieldPair{"representative", quote(repAddr)},
			fieldPair{"work", workField},
			fieldPair{"signature", sigHex},
		)
	default:
		return nil, fmt.Errorf("block: unknown kind %d: %w", b.kind, types.ErrInvalidBlock)
	}

	return buildObject(pairs), nil
}

// wireBlock is the decode target for FromJSON; field presence, not
// order, is all that matters once parsed.
type wireBlock struct {
	Type           string `json:"type"`
	Account        string `json:"account"`
	Previous       string `json:"previous"`
	Representative string `json:"representative"`
	Balance        string `json:"balance"`
	Link           string `json:"link"`
	LinkAsAccount  string `json:"link_as_account"`
	Destination    string `json:"destination"`
	Source         string `json:"source"`
	Signature      string `json:"signature"`
	Work           string `json:"work"`
}

func decodeHash32(field, s string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 32 {
		return out, fmt.Errorf("block: %s must be 64 hex characters: %w", field, types.ErrInvalidBlock)
	}
	copy(out[:], raw)
	return out, nil
}

// FromJSON parses data using the reference node's key names, rejecting
// unknown types and malformed field encodings.
func (s *Service) FromJSON(data []byte) (*Block, error) {
	var w wireBlock
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("block: parse json: %w", err)
	}

	var kind Kind
	switch w.Type {
	case "state":
		kind = KindState
	case "send":
		kind = KindSend
	case "receive":
		kind = KindReceive
	case "open":
		kind = KindOpen
	case "change":
		kind = KindChange
	default:
		return nil, fmt.Errorf("block: unknown type %q: %w", w.Type, types.ErrInvalidBlock)
	}

	var opts []Option

	if w.Previous != "" {
		h, err := decodeHash32("previous", w.Previous)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPrevious(h))
	}
	if w.Balance != "" {
		balance, ok := new(big.Int).SetString(w.Balance, 10)
		if !ok || balance.Sign() < 0 {
			return nil, fmt.Errorf("block: balance must be a non-negative decimal integer: %w", types.ErrInvalidBlock)
		}
		opts = append(opts, WithBalance(balance))
	}
	if w.Signature != "" {
		sig, err := hex.DecodeString(w.Signature)
		if err != nil || len(sig) != 64 {
			return nil, fmt.Errorf("block: signature must be 128 hex characters: %w", types.ErrInvalidSignature)
		}
		opts = append(opts, WithSignature(sig))
	}
	if w.Work != "" {
		raw, err := hex.DecodeString(w.Work)
		if err != nil || len(raw) != 8 {
			return nil, fmt.Errorf("block: work must be 16 hex characters: %w", types.ErrInvalidWork)
		}
		var be [8]byte
		copy(be[:], raw)
		var v uint64
		for _, byt := range be {
			v = v<<8 | uint64(byt)
		}
		opts = append(opts, WithWork(v))
	}

	switch kind {
	case KindState:
		if w.Account != "" {
			pub, err := s.deps.address.AddressToPublicKey(w.Account)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithAccount(pub32(pub)))
		}
		if w.Representative != "" {
			pub, err := s.deps.address.AddressToPublicKey(w.Representative)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithRepresentative(pub32(pub)))
		}
		switch {
		case w.Link != "":
			h, err := decodeHash32("link", w.Link)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithLink(h))
		case w.LinkAsAccount != "":
			pub, err := s.deps.address.AddressToPublicKey(w.LinkAsAccount)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithLink(pub32(pub)))
		}
	case KindSend:
		if w.Destination != "" {
			pub, err := s.deps.address.AddressToPublicKey(w.Destination)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithDestination(pub32(pub)))
		}
	case KindReceive:
		if w.Source != "" {
			h, err := decodeHash32("source", w.Source)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithSource(h))
		}
	case KindOpen:
		if w.Source != "" {
			h, err := decodeHash32("source", w.Source)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithSource(h))
		}
		if w.Representative != "" {
			pub, err := s.deps.address.AddressToPublicKey(w.Representative)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithRepresentative(pub32(pub)))
		}
		if w.Account != "" {
			pub, err := s.deps.address.AddressToPublicKey(w.Account)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithAccount(pub32(pub)))
		}
	case KindChange:
		if w.Representative != "" {
			pub, err := s.deps.address.AddressToPublicKey(w.Representative)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithRepresentative(pub32(pub)))
		}
	}

	return s.New(kind, opts...), nil
}

func pub32(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], b)
	return out
}
