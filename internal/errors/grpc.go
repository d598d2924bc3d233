package errors

import (
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorDomain tags the ErrorInfo detail attached to converted errors
const errorDomain = "tahwng"

var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

// GRPCCode returns the matching gRPC code, Unknown for unmapped codes
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

func codeFromGRPC(gc codes.Code) Code {
	for c, candidate := range grpcCodes {
		if candidate == gc {
			return c
		}
	}
	return CodeInternal
}

// ToGRPCError converts err to a status error. Errors from this package keep
// their code and meta in an ErrorInfo detail; anything else is Internal.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var e *Error
	if !As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   errorDomain,
		Metadata: metaStrings(e.Meta),
	})
	if detailErr != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// FromGRPCError turns a status error back into an *Error, restoring the
// code and meta carried in its ErrorInfo
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != errorDomain {
			continue
		}
		if reason := Code(info.GetReason()); reason != "" {
			out.Code = reason
		}
		for k, v := range info.GetMetadata() {
			out.WithMeta(k, v)
		}
	}

	return out
}

// metaStrings flattens meta for the wire. Validation field lists become one
// entry per field.
func metaStrings(meta map[string]any) map[string]string {
	if len(meta) == 0 {
		return nil
	}

	out := make(map[string]string, len(meta))
	for k, v := range meta {
		switch val := v.(type) {
		case string:
			out[k] = val
		case map[string][]string:
			for field, msgs := range val {
				out[k+"."+field] = strings.Join(msgs, "; ")
			}
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}
