// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main implements the index server. The server keeps a string-keyed
// ordered index in memory; the order of the keys is either byte order or a
// language-sensitive collation selected at startup.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/9rum/bstree/index"
	"github.com/9rum/bstree/internal/bst"
	"github.com/9rum/bstree/internal/order"
	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	collation := flag.String("collation", "", "BCP 47 language tag of the key collation; byte order if empty")
	numeric := flag.Bool("numeric", false, "Collate digit sequences by numeric value")
	snapshot := flag.String("f", "", "JSON snapshot to load at startup")
	flag.Parse()
	defer glog.Flush()

	cmp, err := comparator(*collation, *numeric)
	if err != nil {
		glog.Fatalf("invalid collation: %v", err)
	}
	if err = serve(*port, cmp, *snapshot); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

// comparator returns the key order for the given collation settings.
func comparator(tag string, numeric bool) (bst.Comparator[string], error) {
	if tag == "" {
		if numeric {
			return nil, fmt.Errorf("-numeric requires -collation")
		}
		return order.Ordered[string], nil
	}
	lang, err := language.Parse(tag)
	if err != nil {
		return nil, err
	}
	var opts []collate.Option
	if numeric {
		opts = append(opts, collate.Numeric)
	}
	return order.Collate(lang, opts...), nil
}

func serve(port int, cmp bst.Comparator[string], snapshot string) error {
	srv := index.NewIndexServer(cmp)
	if snapshot != "" {
		data, err := os.ReadFile(snapshot)
		if err != nil {
			return err
		}
		if _, err = srv.Load(context.Background(), wrapperspb.String(string(data))); err != nil {
			return err
		}
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	server := newServer(srv)
	glog.Infof("server listening at %v", lis.Addr())

	return server.Serve(lis)
}

func newServer(srv index.IndexServer) *grpc.Server {
	recovery := grpc_recovery.WithRecoveryHandler(func(p interface{}) error {
		glog.Errorf("recovered from panic: %v", p)
		return status.Errorf(codes.Internal, "%v", p)
	})
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func(done <-chan os.Signal, server *grpc.Server) {
		sig := <-done
		glog.Infof("received %v, stopping", sig)
		server.GracefulStop()
	}(done, server)

	index.RegisterIndexServer(server, srv)

	return server
}
