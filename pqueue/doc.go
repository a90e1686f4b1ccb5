// This file documents the shared contract both pqueue realizations honor:
// Pop always returns the entry with the lowest Score currently stored
// (HeapQueue exactly; BinQueue up to its bin width), and ties break by
// insertion/EdgeID order so that two runs over identical inputs observe
// identical pop sequences.
package pqueue
