package tree

import "github.com/sirupsen/logrus"

// Log receives a debug entry for every structural change (removal case,
// rebalance, clear). At the default Info level nothing is written.
var Log = logrus.New()
