// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

//go:build !linux

package fasthuff

import "os"

func adviseSequential(*os.File) {}
