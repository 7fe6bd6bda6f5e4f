/*
 *    Copyright (c) 2026 The ViKey-Bridge Authors
 *
 *    This file is part of ViKey-Bridge.
 *
 *    ViKey-Bridge is free software: you can redistribute it and/or modify
 *    it under the terms of the GNU General Public License as published by
 *    the Free Software Foundation, either version 3 of the License, or
 *    (at your option) any later version.
 *
 *    ViKey-Bridge is distributed in the hope that it will be useful,
 *    but WITHOUT ANY WARRANTY; without even the implied warranty of
 *    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *    GNU General Public License for more details.
 *
 *    You should have received a copy of the GNU General Public License
 *    along with ViKey-Bridge.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"net"
)

// Addresses of public DNS servers, only used to find the outgoing route.
var routeProbes = []string{"2001:4860:4860::8888", "8.8.8.8"}

// findDefaultHost returns the address clients on the local network most
// likely reach this machine by.
func findDefaultHost() string {
	if host, ok := routedHost(); ok {
		return host
	}
	if host, ok := interfaceHost(); ok {
		return host
	}
	return "localhost"
}

// routedHost asks the kernel which local address it would route public
// traffic from. No packets are sent.
func routedHost() (string, bool) {
	for _, probe := range routeProbes {
		conn, err := net.Dial("udp", net.JoinHostPort(probe, "80"))
		if err != nil {
			continue
		}
		local := conn.LocalAddr()
		conn.Close()
		if udpAddr, ok := local.(*net.UDPAddr); ok {
			return udpAddr.IP.String(), true
		}
	}
	return "", false
}

func interfaceHost() (string, bool) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "", false
	}
	fallback := ""
	for _, inter := range interfaces {
		if inter.Flags&net.FlagUp == 0 || inter.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := inter.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ip, _, err := net.ParseCIDR(addr.String())
			if err != nil {
				continue
			}
			if !isLinkLocal(ip) {
				return ip.String(), true
			}
			if fallback == "" {
				fallback = ip.String()
			}
		}
	}
	return fallback, fallback != ""
}

func isLinkLocal(ip net.IP) bool {
	return ip.IsLinkLocalUnicast()
}
