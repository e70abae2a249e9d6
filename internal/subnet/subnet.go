package subnet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"net/netip"
)

var (
	ErrInvalidCIDR      = errors.New("invalid CIDR")
	ErrInvalidHostCount = errors.New("invalid host count")
	ErrBlockTooSmall    = errors.New("subnet larger than the parent block")
	ErrTooManySubnets   = errors.New("too many subnets to enumerate")
)

// maxEnumeratedSubnets bounds the Subnets list so a request like
// splitting a /8 into /30s cannot produce a multi-million entry response.
const maxEnumeratedSubnets = 1 << 16

type Subnet struct {
	Network   string `json:"network"`
	Broadcast string `json:"broadcast"`
	FirstHost string `json:"first_host"`
	LastHost  string `json:"last_host"`
	Mask      string `json:"mask"`
	Hosts     int    `json:"hosts"`
}

type Plan struct {
	Parent         string   `json:"parent"`
	OriginalPrefix int      `json:"original_prefix"`
	NewPrefix      int      `json:"new_prefix"`
	Mask           string   `json:"mask"`
	SubnetCount    int      `json:"subnet_count"`
	UsableHosts    int      `json:"usable_hosts_per_subnet"`
	Subnets        []Subnet `json:"subnets"`
}

// Split carves an IPv4 CIDR block into equal subnets, each holding at
// least requiredHosts usable addresses (network and broadcast excluded).
// Host bits set in the input are tolerated and masked away.
func Split(cidr string, requiredHosts int) (Plan, error) {
	if requiredHosts <= 0 {
		return Plan{}, fmt.Errorf("%w: required hosts must be positive, got %d", ErrInvalidHostCount, requiredHosts)
	}
	if requiredHosts > (1<<30)-2 {
		return Plan{}, fmt.Errorf("%w: %d hosts do not fit in an IPv4 subnet", ErrInvalidHostCount, requiredHosts)
	}
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %q", ErrInvalidCIDR, cidr)
	}
	if !prefix.Addr().Is4() {
		return Plan{}, fmt.Errorf("%w: %q: only IPv4 is supported", ErrInvalidCIDR, cidr)
	}
	parent := prefix.Masked()

	// smallest n such that 2^n >= requiredHosts + 2
	hostBits := bits.Len(uint(requiredHosts + 1))
	newPrefix := 32 - hostBits
	if newPrefix < parent.Bits() {
		return Plan{}, fmt.Errorf("%w: a /%d subnet does not fit in /%d", ErrBlockTooSmall, newPrefix, parent.Bits())
	}

	count := 1 << (newPrefix - parent.Bits())
	if count > maxEnumeratedSubnets {
		return Plan{}, fmt.Errorf("%w: %d", ErrTooManySubnets, count)
	}

	size := uint32(1) << hostBits
	base := addrToU32(parent.Addr())
	mask := u32ToAddr(maskU32(newPrefix)).String()
	usable := int(size) - 2

	subnets := make([]Subnet, 0, count)
	for i := 0; i < count; i++ {
		network := base + uint32(i)*size
		broadcast := network + size - 1
		subnets = append(subnets, Subnet{
			Network:   u32ToAddr(network).String(),
			Broadcast: u32ToAddr(broadcast).String(),
			FirstHost: u32ToAddr(network + 1).String(),
			LastHost:  u32ToAddr(broadcast - 1).String(),
			Mask:      mask,
			Hosts:     usable,
		})
	}

	return Plan{
		Parent:         parent.String(),
		OriginalPrefix: parent.Bits(),
		NewPrefix:      newPrefix,
		Mask:           mask,
		SubnetCount:    count,
		UsableHosts:    usable,
		Subnets:        subnets,
	}, nil
}

func addrToU32(a netip.Addr) uint32 {
	b := a.As4()
	return binary.BigEndian.Uint32(b[:])
}

func u32ToAddr(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

func maskU32(prefix int) uint32 {
	if prefix <= 0 {
		return 0
	}
	return ^uint32(0) << (32 - prefix)
}
