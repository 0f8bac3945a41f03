package server

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/catalogrpc"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type CreateFileRequest struct {
	Name string `validate:"required"`
	Path string `validate:"required"`
	Size uint64
}

func CreateFileRequestFromProto(pb *catalogrpc.CreateFileRequest) CreateFileRequest {
	return CreateFileRequest{Name: pb.Name, Path: pb.Path, Size: pb.Size}
}

// PathRequest addresses one entry, for delete and recover.
type PathRequest struct {
	Path string `validate:"required"`
}

func PathRequestFromProto(pb *catalogrpc.PathRequest) PathRequest {
	return PathRequest{Path: pb.Path}
}

// ListRequest carries no validation: an empty filter is legal and matches nothing
// under the exclusion rule, or everything as a prefix.
type ListRequest struct {
	Filter string
	Prefix bool
}

func ListRequestFromProto(pb *catalogrpc.ListFilesRequest) ListRequest {
	return ListRequest{Filter: pb.Filter, Prefix: pb.Prefix}
}

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}
