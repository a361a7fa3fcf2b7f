package shaped

import (
	"math/rand"

	"github.com/pkg/errors"
)

// A Fold is one train/test partition of a collection for
// cross-validation. Training and testing items are disjoint and share
// the collection's reference.
type Fold struct {
	Training *DataCollection
	Testing  *DataCollection
}

// CreateFolds partitions the collection's items into n folds using the
// given randomness source, so runs are reproducible given a seed.
//
// The shuffled items are chunked into groups of floor(size/n); fold k
// tests on chunk k and trains on every other chunk. When n does not
// evenly divide the size, the remainder items form an extra chunk that
// is part of every fold's training set and no fold's testing set.
func (d *DataCollection) CreateFolds(rng *rand.Rand, n int) ([]Fold, error) {
	if n < 1 || n > d.Size() {
		return nil, errors.Errorf("cannot create %d folds from %d items", n, d.Size())
	}

	shuffled := d.Items()
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	foldSize := d.Size() / n
	var chunks [][]DataItem
	for i := 0; i < len(shuffled); i += foldSize {
		end := i + foldSize
		if end > len(shuffled) {
			end = len(shuffled)
		}
		chunks = append(chunks, shuffled[i:end])
	}

	folds := make([]Fold, n)
	for k := range folds {
		var training []DataItem
		for i, chunk := range chunks {
			if i != k {
				training = append(training, chunk...)
			}
		}
		folds[k] = Fold{
			Training: NewDataCollection(d.reference, training),
			Testing:  NewDataCollection(d.reference, chunks[k]),
		}
	}
	return folds, nil
}

// CreateLeaveOneOutFolds creates one fold per item, each testing on
// exactly that item.
func (d *DataCollection) CreateLeaveOneOutFolds(rng *rand.Rand) ([]Fold, error) {
	return d.CreateFolds(rng, d.Size())
}
