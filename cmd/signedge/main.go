// SPDX-License-Identifier: MIT

// Command signedge extracts leave-one-out features of signed edges.
//
//	signedge extract --config run.yaml
//	signedge profile --input edges.txt --ranges 0-5,6-20,21-100000
//	signedge ranges  --input edges.txt --min-bucket 50
//	signedge synth   --nodes 500 --prob 0.02 --neg-ratio 0.2 --out edges.txt
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/plan-systems/klog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := 0
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		klog.Errorf("signedge: %v", err)
		code = 1
	}
	stop()
	klog.Flush()
	os.Exit(code)
}
