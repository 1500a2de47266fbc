// Package gocv_compare contains tests that compare the pure Go k-means
// quantizer against OpenCV's kmeans. These tests require OpenCV to be
// installed.
//
// Run with: cd gocv_compare && go test -v
package gocv_compare

import (
	"math"
	"testing"

	"github.com/wbrown/kquant"
	"github.com/wbrown/kquant/imageutil"
	"gocv.io/x/gocv"
)

// samplesToGocv converts pixels to an N x 3 float32 sample matrix, the
// layout cv::kmeans expects.
func samplesToGocv(img kquant.Image) gocv.Mat {
	mat := gocv.NewMatWithSize(len(img.Pix), 3, gocv.MatTypeCV32F)
	for i, c := range img.Pix {
		mat.SetFloatAt(i, 0, float32(c.R))
		mat.SetFloatAt(i, 1, float32(c.G))
		mat.SetFloatAt(i, 2, float32(c.B))
	}
	return mat
}

// gocvKMeans clusters img with OpenCV and returns per-pixel labels and the
// image rebuilt from the rounded centers.
func gocvKMeans(img kquant.Image, k int) ([]int, kquant.Image) {
	samples := samplesToGocv(img)
	defer samples.Close()
	labels := gocv.NewMat()
	defer labels.Close()
	centers := gocv.NewMat()
	defer centers.Close()

	criteria := gocv.NewTermCriteria(gocv.Count|gocv.EPS, 100, 0.1)
	gocv.KMeans(samples, k, &labels, criteria, 5, gocv.KMeansPPCenters, &centers)

	palette := make([]kquant.RGB, k)
	for j := range palette {
		palette[j] = kquant.RGB{
			R: uint8(math.Round(float64(centers.GetFloatAt(j, 0)))),
			G: uint8(math.Round(float64(centers.GetFloatAt(j, 1)))),
			B: uint8(math.Round(float64(centers.GetFloatAt(j, 2)))),
		}
	}

	out := kquant.NewImage(img.Width, img.Height)
	assignments := make([]int, len(img.Pix))
	for i := range img.Pix {
		assignments[i] = int(labels.GetIntAt(i, 0))
		out.Pix[i] = palette[assignments[i]]
	}
	return assignments, out
}

// samePartition reports whether two labelings group pixels identically,
// ignoring label numbering.
func samePartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ab := map[int]int{}
	ba := map[int]int{}
	for i := range a {
		if m, ok := ab[a[i]]; ok && m != b[i] {
			return false
		}
		if m, ok := ba[b[i]]; ok && m != a[i] {
			return false
		}
		ab[a[i]] = b[i]
		ba[b[i]] = a[i]
	}
	return true
}

func TestComparePartitionOnSeparatedColors(t *testing.T) {
	img := kquant.FromRGBAImage(imageutil.CreateColorBarsImage(64, 8))

	gocvLabels, _ := gocvKMeans(img, 8)

	// Seed with one pixel per bar so the pure Go run cannot merge bars.
	palette := make([]kquant.RGB, 8)
	for i := range palette {
		palette[i] = img.At(i*8, 0)
	}
	res, err := kquant.Quantize(img, 8, kquant.WithInitializer(kquant.PaletteSeeder{Palette: palette}))
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}

	if !samePartition(res.Assignments, gocvLabels) {
		t.Error("kquant and OpenCV should split the color bars identically")
	}
	if mse := imageutil.CalculateMSE(img.ToRGBAImage(), res.Image.ToRGBAImage()); mse != 0 {
		t.Errorf("Eight bars with k=8 should be reproduced exactly, MSE=%f", mse)
	}
}

func TestCompareQuantizationError(t *testing.T) {
	img := kquant.FromRGBAImage(imageutil.CreateGradientImage(128, 32))
	const k = 6

	_, gocvOut := gocvKMeans(img, k)
	gocvMSE := imageutil.CalculateMSE(img.ToRGBAImage(), gocvOut.ToRGBAImage())

	// OpenCV keeps the best of several k-means++ attempts; give the random
	// initializer the same number of tries.
	bestMSE := math.MaxFloat64
	for seed := int64(1); seed <= 5; seed++ {
		res, err := kquant.Quantize(img, k, kquant.WithSeed(seed), kquant.WithEarlyStop(true))
		if err != nil {
			t.Fatalf("Quantize failed: %v", err)
		}
		mse := imageutil.CalculateMSE(img.ToRGBAImage(), res.Image.ToRGBAImage())
		bestMSE = math.Min(bestMSE, mse)
	}

	t.Logf("MSE kquant=%.2f opencv=%.2f", bestMSE, gocvMSE)
	if bestMSE > 2*gocvMSE+1 {
		t.Errorf("kquant MSE %.2f is far worse than OpenCV's %.2f", bestMSE, gocvMSE)
	}
}
