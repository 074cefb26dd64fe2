// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svm provides the training core of a kernel-based binary Support
// Vector Machine: a labeled training set and a kernel function are turned
// into a discriminant f(x) = Σᵢ αᵢ yᵢ K(xᵢ, x) + b by solving the L1
// soft-margin SVM dual problem without the bias equality constraint (the
// bias is instead absorbed by a constant +1 shift added to the kernel).
//
// The package itself only defines the data every solver shares (TrainingPair,
// the Kernel contract, and the BinaryClassifier façade that binds a trainer
// to a kernel). The solvers that do the actual optimization live in the
// sibling packages gonum.org/v1/svm/coorddescent and gonum.org/v1/svm/chunking;
// either one can be passed to NewBinaryClassifier as the Trainer.
package svm // import "gonum.org/v1/svm"
