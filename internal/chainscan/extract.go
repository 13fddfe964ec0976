package chainscan

import (
	"fmt"
	"strconv"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/types"
)

// Event is one candidate notification found in a block. Key is matched
// against Subscription.MatchKey of subscriptions of the same Kind.
type Event struct {
	Kind    model.SubscriptionKind
	Key     string
	TxHash  string
	EventID string

	// Topic0 is the first topic of a log event. It feeds the topic filter
	// of CONTRACT_EVENT subscriptions.
	Topic0 string

	Params map[string]any
}

// EventExtractor turns a block into candidate events. Implementations are
// chosen by chain family.
type EventExtractor interface {
	Extract(block chain.Block) []Event
}

// ExtractorFunc adapts a function to EventExtractor.
type ExtractorFunc func(block chain.Block) []Event

func (f ExtractorFunc) Extract(block chain.Block) []Event {
	return f(block)
}

// ExtractorFor returns the extractor of a chain family.
func ExtractorFor(family chain.Family) (EventExtractor, error) {
	switch family {
	case chain.FamilyUTXO:
		return ExtractorFunc(extractUTXO), nil
	case chain.FamilyAccount:
		return ExtractorFunc(extractAccount), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
}

// txAddresses returns the distinct addresses on either side of tx.
func txAddresses(tx chain.Transaction) []string {
	addresses := types.NewSet[string]()
	for _, in := range tx.From {
		if in.Address != "" {
			addresses.Add(model.NormalizeMatchKey(in.Address))
		}
	}
	for _, out := range tx.To {
		if out.Address != "" {
			addresses.Add(model.NormalizeMatchKey(out.Address))
		}
	}

	return types.Sorted(addresses)
}

func addressEvents(tx chain.Transaction) []Event {
	var events []Event
	for _, address := range txAddresses(tx) {
		events = append(events, Event{
			Kind:   model.KindAddress,
			Key:    address,
			TxHash: tx.Hash,
			Params: map[string]any{
				"address":     address,
				"transaction": tx,
			},
		})
	}

	return events
}

func hashEvent(tx chain.Transaction) Event {
	return Event{
		Kind:   model.KindTransactionHash,
		Key:    model.NormalizeMatchKey(tx.Hash),
		TxHash: tx.Hash,
		Params: map[string]any{
			"transaction": tx,
		},
	}
}

// extractUTXO emits address and hash events. UTXO chains have no logs.
func extractUTXO(block chain.Block) []Event {
	var events []Event
	for _, tx := range block.Transactions {
		events = append(events, addressEvents(tx)...)
		events = append(events, hashEvent(tx))
	}

	return events
}

// methodSignature returns the 4-byte selector at the start of a hex input,
// or "" when the input is shorter.
func methodSignature(input string) string {
	input = chain.Strip0x(input)
	if len(input) < 8 {
		return ""
	}

	return model.NormalizeMatchKey("0x" + input[:8])
}

// extractAccount emits address, hash, log and contract creation events.
func extractAccount(block chain.Block) []Event {
	var events []Event
	for _, tx := range block.Transactions {
		events = append(events, addressEvents(tx)...)
		events = append(events, hashEvent(tx))

		if tx.CreatesContract {
			if sig := methodSignature(tx.Input); sig != "" {
				events = append(events, Event{
					Kind:   model.KindFabricContractCreation,
					Key:    sig,
					TxHash: tx.Hash,
					Params: map[string]any{
						"methodSignature": sig,
						"transaction":     tx,
					},
				})
			}
		}

		for _, log := range tx.Logs {
			eventID := strconv.FormatUint(log.Index, 10)

			var topic0 string
			if len(log.Topics) > 0 {
				topic0 = log.Topics[0]
			}

			params := map[string]any{
				"log":         log,
				"transaction": tx.Hash,
			}

			events = append(events, Event{
				Kind:    model.KindContractEvent,
				Key:     model.NormalizeMatchKey(log.Address),
				TxHash:  tx.Hash,
				EventID: eventID,
				Topic0:  topic0,
				Params:  params,
			})

			if topic0 != "" {
				events = append(events, Event{
					Kind:    model.KindOraclize,
					Key:     model.NormalizeMatchKey(topic0),
					TxHash:  tx.Hash,
					EventID: eventID,
					Topic0:  topic0,
					Params:  params,
				})
			}
		}
	}

	return events
}
