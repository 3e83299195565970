package v1alpha1

import (
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/monster-api/internal/errors"
)

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func stringListField(req *structpb.Struct, name string) ([]string, error) {
	value, ok := req.GetFields()[name]
	if !ok {
		return []string{}, nil
	}
	list, ok := value.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, errors.InvalidArgumentf("%s must be a list", name).WithMeta("field", name)
	}

	out := make([]string, 0, len(list.ListValue.GetValues()))
	for _, v := range list.ListValue.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, errors.InvalidArgumentf("%s must only hold strings", name).WithMeta("field", name)
		}
		out = append(out, s.StringValue)
	}
	return out, nil
}

// intField reads a whole number, returning def when the field is absent
func intField(req *structpb.Struct, name string, def int) (int, error) {
	value, ok := req.GetFields()[name]
	if !ok {
		return def, nil
	}
	n, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok || math.IsNaN(n.NumberValue) || math.IsInf(n.NumberValue, 0) ||
		n.NumberValue != math.Trunc(n.NumberValue) {
		return 0, errors.InvalidArgumentf("%s must be a whole number", name).WithMeta("field", name)
	}
	if n.NumberValue < math.MinInt32 || n.NumberValue > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("%s is out of range", name).WithMeta("field", name)
	}
	return int(n.NumberValue), nil
}

func toAnyList(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func newResponse(fields map[string]any) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to build response"))
	}
	return resp, nil
}
