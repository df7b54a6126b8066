// Package api holds the wire contract: the proto source under proto/
// and the generated code under pb/.
package api

//go:generate protoc -I .. --go_out=.. --go_opt=module=numberd --go-grpc_out=.. --go-grpc_opt=module=numberd api/proto/numberset.proto
