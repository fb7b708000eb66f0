package lb

import (
	"strconv"
	"strings"
	"sync"
)

type Server struct {
	Url    string
	Weight int
}

type WeightedRoundRobin struct {
	servers []Server
	index   int
	cw      int
	gcd     int
	mu      sync.Mutex
}

func gcd(weights []int) int {
	g := 0
	for _, w := range weights {
		for w != 0 {
			g, w = w, g%w
		}
	}
	return g
}

func maxWeight(servers []Server) int {
	m := 0
	for _, server := range servers {
		if server.Weight > m {
			m = server.Weight
		}
	}
	return m
}

// ParseServers reads entries of the form "url" or "url;weight",
// a missing or invalid weight counts as 1.
func ParseServers(entries []string) []Server {
	servers := make([]Server, 0, len(entries))
	for _, e := range entries {
		url, w, found := strings.Cut(e, ";")
		weight := 1
		if found {
			if n, err := strconv.Atoi(strings.TrimSpace(w)); err == nil && n > 0 {
				weight = n
			}
		}
		servers = append(servers, Server{
			Url:    strings.TrimRight(strings.TrimSpace(url), "/"),
			Weight: weight,
		})
	}
	return servers
}

func NewWeightedRoundRobin(servers []Server) *WeightedRoundRobin {
	weights := make([]int, len(servers))
	for i, server := range servers {
		weights[i] = server.Weight
	}

	return &WeightedRoundRobin{
		servers: servers,
		gcd:     gcd(weights),
		index:   -1,
	}
}

// Next returns a zero Server when there is nothing to pick from.
func (wrr *WeightedRoundRobin) Next() Server {
	wrr.mu.Lock()
	defer wrr.mu.Unlock()

	if len(wrr.servers) == 0 {
		return Server{}
	}

	for {
		wrr.index = (wrr.index + 1) % len(wrr.servers)
		if wrr.index == 0 {
			wrr.cw -= wrr.gcd
			if wrr.cw <= 0 {
				wrr.cw = maxWeight(wrr.servers)
				if wrr.cw == 0 {
					return Server{}
				}
			}
		}

		if wrr.servers[wrr.index].Weight >= wrr.cw {
			return wrr.servers[wrr.index]
		}
	}
}
