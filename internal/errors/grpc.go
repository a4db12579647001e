package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata rides along
// as a google.protobuf.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		if details, detailsErr := errorDetails(customErr); detailsErr == nil {
			if withDetails, withErr := st.WithDetails(details); withErr == nil {
				st = withDetails
			}
		}

		return st.Err()
	}

	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if details, ok := detail.(*structpb.Struct); ok {
			if meta, ok := details.AsMap()["meta"].(map[string]interface{}); ok {
				customErr.Meta = meta
			}
			break
		}
	}

	return customErr
}

// errorDetails packs code, message and metadata into a Struct. Metadata goes
// through JSON first because structpb only accepts generic containers.
func errorDetails(err *Error) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		"code":    string(err.Code),
		"message": err.Message,
	}

	if len(err.Meta) > 0 {
		raw, marshalErr := json.Marshal(err.Meta)
		if marshalErr != nil {
			return nil, marshalErr
		}
		var meta map[string]interface{}
		if unmarshalErr := json.Unmarshal(raw, &meta); unmarshalErr != nil {
			return nil, unmarshalErr
		}
		fields["meta"] = meta
	}

	return structpb.NewStruct(fields)
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument, codes.OutOfRange:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
