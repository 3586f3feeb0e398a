// Package algo provides the sorting-algorithm step producers.
//
// Each producer sorts a working array in place while emitting the ordered
// [step.Step] trace of everything it does:
//
//   - [Bubble], [Cocktail], [Comb]: adjacent or gapped compare-and-swap
//   - [Insertion], [Shell], [TimsortTrace]: shift-then-set key placement
//   - [Selection], [Heap], [Quick]: comparison sorts with swaps
//   - [Counting], [RadixLSD], [Bucket]: distribution sorts placing via set
//   - [Merge]: iterative bottom-up merging
//
// Producers are lazy iter.Seq values; drive them one step at a time with
// iter.Pull for pause, resume and scrubbed playback. The [Registry] binds
// names to producers and their [Info] descriptors.
package algo
