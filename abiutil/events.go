package abiutil

import (
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// LogParser unpacks a log of one known event, usually a generated Parse* method.
type LogParser func(types.Log) (interface{}, error)

type eventEntry struct {
	event *abi.Event
	parse LogParser
}

// EventCodec routes logs to the parser registered for their topic-0.
type EventCodec struct {
	abi     *abi.ABI
	byTopic map[common.Hash]eventEntry
}

// NewEventCodec keys parsers by ABI event name, including the numeric suffix
// go-ethereum gives overloaded events.
func NewEventCodec(parsed *abi.ABI, parsers map[string]LogParser) (*EventCodec, error) {
	c := &EventCodec{
		abi:     parsed,
		byTopic: make(map[common.Hash]eventEntry, len(parsers)),
	}
	for name, parse := range parsers {
		e, ok := parsed.Events[name]
		if !ok {
			return nil, errors.Errorf("event %s not in abi", name)
		}
		if e.Anonymous {
			return nil, errors.Errorf("event %s is anonymous", name)
		}
		ev := e
		c.byTopic[e.ID] = eventEntry{event: &ev, parse: parse}
	}
	return c, nil
}

// MustNewEventCodec is NewEventCodec for package level vars.
func MustNewEventCodec(parsed *abi.ABI, parsers map[string]LogParser) *EventCodec {
	c, err := NewEventCodec(parsed, parsers)
	if err != nil {
		panic(err)
	}
	return c
}

// Decode returns the typed event for log. Every failure wraps ErrInvalidLog.
func (c *EventCodec) Decode(log types.Log) (interface{}, error) {
	if len(log.Topics) == 0 {
		return nil, errors.Wrap(ErrInvalidLog, "log has no topics")
	}
	entry, ok := c.byTopic[log.Topics[0]]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidLog, "unknown topic %s", log.Topics[0].Hex())
	}
	ev, err := entry.parse(log)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidLog, "%s: %v", entry.event.Name, err)
	}
	return ev, nil
}

// Event returns the ABI event for topic-0.
func (c *EventCodec) Event(topic common.Hash) (*abi.Event, bool) {
	entry, ok := c.byTopic[topic]
	if !ok {
		return nil, false
	}
	return entry.event, true
}

// Topics returns the topic-0 of every registered event.
func (c *EventCodec) Topics() []common.Hash {
	topics := make([]common.Hash, 0, len(c.byTopic))
	for _, name := range sortedKeys(c.abi.Events) {
		if e, ok := c.byTopic[c.abi.Events[name].ID]; ok {
			topics = append(topics, e.event.ID)
		}
	}
	return topics
}

// Encode builds the log an event struct would be emitted as. Fields are
// looked up by the camel-cased argument names abigen uses, argN for unnamed
// arguments.
func (c *EventCodec) Encode(name string, ev interface{}) (types.Log, error) {
	e, ok := c.abi.Events[name]
	if !ok {
		return types.Log{}, errors.Errorf("event %s not in abi", name)
	}
	v := reflect.ValueOf(ev)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	topics := []common.Hash{e.ID}
	var data []interface{}
	for i, arg := range e.Inputs {
		fieldName := arg.Name
		if fieldName == "" {
			fieldName = fmt.Sprintf("arg%d", i)
		}
		field := v.FieldByName(abi.ToCamelCase(fieldName))
		if !field.IsValid() {
			return types.Log{}, errors.Errorf("%s: no field for argument %s", name, arg.Name)
		}
		if !arg.Indexed {
			data = append(data, field.Interface())
			continue
		}
		t, err := abi.MakeTopics([]interface{}{field.Interface()})
		if err != nil {
			return types.Log{}, errors.Wrapf(err, "%s: topic %s", name, arg.Name)
		}
		topics = append(topics, t[0][0])
	}
	packed, err := e.Inputs.NonIndexed().Pack(data...)
	if err != nil {
		return types.Log{}, errors.Wrapf(err, "%s: packing data", name)
	}
	return types.Log{Topics: topics, Data: packed}, nil
}
