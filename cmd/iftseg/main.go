// Command iftseg runs the IFT segmentation and clustering methods on
// ordinary raster images.
//
//	iftseg segment   --in img.png --out mask.png --obj 40,32 --bkg 2,2 --alpha 0.5 --beta 1
//	iftseg watershed --in img.png --out mask.png --obj 40,32 --bkg 2,2 --strength 0.5
//	iftseg cluster   --in img.png --out labels.png --fraction 0.3
//	iftseg msf       --in img.png --out labels.png --regions 8
//
// Inputs are converted to grayscale. Every flag may also be set through an
// IFTSEG_ environment variable, e.g. IFTSEG_ALPHA=0.5.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
