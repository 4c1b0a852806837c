package logaction

import "github.com/on-the-ground/action_ive_go/effect"

var StampedFiltered = stampedFiltered[effect.Unit]
