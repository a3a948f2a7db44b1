/*
Package grpcstatus carries violations across gRPC.

Test harnesses that shard randomized cases over gRPC workers can return the
result of a check as a status. A violation maps to FailedPrecondition with a
structpb.Struct detail describing it, any other error maps to Unknown.

Operand, expected and observed values are sent in their fmt.Sprint form, so a
rebuilt violation holds strings where the original held values. Its Error text
is unchanged.
*/
package grpcstatus

import (
	"errors"
	"fmt"

	protov1 "github.com/golang/protobuf/proto"
	"github.com/npillmayer/schuko/tracing"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"reltest/scheduler"
	"reltest/violation"
)

// tracer traces with key 'reltest.grpcstatus'
func tracer() tracing.Trace {
	return tracing.Select("reltest.grpcstatus")
}

// Convert the result of a check to a status
func Status(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	v, ok := violation.As(err)
	if !ok {
		return status.New(codes.Unknown, err.Error())
	}
	st := status.New(codes.FailedPrecondition, err.Error())
	detail, derr := structpb.NewStruct(encode(v))
	if derr != nil {
		tracer().Errorf("cannot encode violation: %v", derr)
		return st
	}
	withDetail, derr := st.WithDetails(protov1.MessageV1(detail))
	if derr != nil {
		tracer().Errorf("cannot attach violation: %v", derr)
		return st
	}
	return withDetail
}

// Rebuild the result of a check from a status.
//
// Returns nil for an OK status, the violation for a status created by Status, and a plain error otherwise.
func FromStatus(st *status.Status) error {
	if st.Code() == codes.OK {
		return nil
	}
	for _, d := range st.Details() {
		detail, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		v, err := decode(detail.AsMap())
		if err != nil {
			tracer().Errorf("cannot decode violation: %v", err)
			break
		}
		return v
	}
	return errors.New(st.Message())
}

func encode(v *violation.Violation) map[string]interface{} {
	m := map[string]interface{}{
		"kind":        v.Kind.String(),
		"description": v.Description,
		"step":        v.Step,
	}
	if len(v.Operands) > 0 {
		operands := make([]interface{}, 0, len(v.Operands))
		for _, op := range v.Operands {
			operands = append(operands, map[string]interface{}{
				"name":  op.Name,
				"value": fmt.Sprint(op.Value),
			})
		}
		m["operands"] = operands
	}
	if v.Expected != nil || v.Observed != nil {
		m["expected"] = fmt.Sprint(v.Expected)
		m["observed"] = fmt.Sprint(v.Observed)
	}
	if len(v.Run) > 0 {
		m["run"] = v.Run.String()
	}
	if cause := v.Unwrap(); cause != nil {
		if c, ok := violation.As(cause); ok {
			m["cause"] = encode(c)
		} else {
			m["cause"] = cause.Error()
		}
	}
	return m
}

func decode(m map[string]interface{}) (*violation.Violation, error) {
	name, _ := m["kind"].(string)
	kind, err := violation.ParseKind(name)
	if err != nil {
		return nil, err
	}
	description, _ := m["description"].(string)
	v := violation.New(kind, "%s", description)
	if step, ok := m["step"].(float64); ok {
		v.At(int(step))
	}
	if operands, ok := m["operands"].([]interface{}); ok {
		for _, o := range operands {
			op, _ := o.(map[string]interface{})
			opName, _ := op["name"].(string)
			v.With(opName, op["value"])
		}
	}
	if expected, ok := m["expected"]; ok {
		v.Values(expected, m["observed"])
	}
	if s, ok := m["run"].(string); ok {
		run, err := scheduler.ParseRun(s)
		if err != nil {
			return nil, err
		}
		v.During(run)
	}
	switch cause := m["cause"].(type) {
	case map[string]interface{}:
		c, err := decode(cause)
		if err != nil {
			return nil, err
		}
		v.Because(c)
	case string:
		v.Because(errors.New(cause))
	}
	return v, nil
}
