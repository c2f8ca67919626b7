package dataset

// Split partitions the dataset into train and validation views along the
// sample axis.
//
// validationRatio is the fraction of samples assigned to the validation
// set, e.g. 0.2 for an 80/20 split. Both results are zero-copy Narrow
// views over the parent's storage. Name and classes carry over; any
// animation layout does not, since an arbitrary cut point need not fall
// on an animation boundary.
func (d *TableDataset) Split(validationRatio float64) (train, valid *TableDataset) {
	n := d.Size()
	splitAt := int(float64(n) * (1.0 - validationRatio))

	trainTable := make(Table, len(d.table))
	validTable := make(Table, len(d.table))
	for field, t := range d.table {
		trainTable[field] = t.Narrow(0, splitAt)
		validTable[field] = t.Narrow(splitAt, n-splitAt)
	}

	meta := Config{Name: d.name, Classes: d.classes}
	return New(trainTable, meta), New(validTable, meta)
}
