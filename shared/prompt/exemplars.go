package prompt

// systemPrompt enumerates the profissa_lft surface the model is allowed to
// use. The node type and method names must stay exactly as the component
// library spells them, or generated code will not run against it.
const systemPrompt = `You are an expert network engineer and Python developer specializing in the Lightweight Fog Testbed (LFT) framework. Your task is to generate Python code that creates network topologies using LFT components.

LFT Components Available:
- Host: Network hosts with IP configuration
- Switch: OpenFlow switches for SDN
- Controller: SDN controllers (e.g., OpenDaylight, ONOS)
- UE: User Equipment for wireless networks
- EPC: Evolved Packet Core for 4G networks
- EnB: eNodeB for 4G base stations

Key LFT Methods:
- instantiate(): Create and start the node
- connect(node, interface1, interface2): Connect two nodes
- setIp(ip, prefix, interface): Configure IP address
- setDefaultGateway(gateway, interface): Set default gateway
- connectToInternet(gateway_ip, prefix, interface1, interface2): Connect to internet

Generate ONLY the Python code without any explanations or markdown formatting. The code should be complete and executable.`

// SimpleSDNRequest is the first exemplar's request, reused by tests and by
// the examples command.
const SimpleSDNRequest = "Create a simple SDN topology with 2 hosts connected to a switch"

// SimpleSDNCode is the canonical two-hosts-one-switch topology.
const SimpleSDNCode = `from profissa_lft.host import Host
from profissa_lft.switch import Switch

h1 = Host('h1')
h2 = Host('h2')
s1 = Switch('s1')

h1.instantiate()
h2.instantiate()
s1.instantiate()

h1.connect(s1, "h1s1", "s1h1")
h2.connect(s1, "h2s1", "s1h2")

h1.setIp('10.0.0.1', 24, "h1s1")
h2.setIp('10.0.0.2', 24, "h2s1")

s1.connectToInternet('10.0.0.4', 24, "s1host", "hosts1")

h1.setDefaultGateway('10.0.0.4', "h1s1")
h2.setDefaultGateway('10.0.0.4', "h2s1")`

const wireless4GRequest = "Create a 4G wireless network with 2 UEs connected to an eNodeB and EPC"

const wireless4GCode = `from profissa_lft.ue import UE
from profissa_lft.enb import EnB
from profissa_lft.epc import EPC

ue1 = UE('ue1')
ue2 = UE('ue2')
enb = EnB('enb1')
epc = EPC('epc1')

ue1.instantiate()
ue2.instantiate()
enb.instantiate()
epc.instantiate()

ue1.connect(enb, "ue1enb", "enblue1")
ue2.connect(enb, "ue2enb", "enblue2")
enb.connect(epc, "enbs1", "s1enb")

ue1.setIp('192.168.1.10', 24, "ue1enb")
ue2.setIp('192.168.1.11', 24, "ue2enb")
enb.setIp('192.168.1.1', 24, "enblue1")
enb.setIp('192.168.1.2', 24, "enblue2")
enb.setIp('10.0.0.1', 24, "enbs1")
epc.setIp('10.0.0.2', 24, "s1enb")

epc.connectToInternet('10.0.0.4', 24, "epchost", "hostepc")

ue1.setDefaultGateway('192.168.1.1', "ue1enb")
ue2.setDefaultGateway('192.168.1.1', "ue2enb")
enb.setDefaultGateway('10.0.0.2', "enbs1")
epc.setDefaultGateway('10.0.0.4', "epchost")`

// exemplars returns the fixed few-shot pairs, in prompt order.
func exemplars() []Exemplar {
	return []Exemplar{
		{User: SimpleSDNRequest, Assistant: SimpleSDNCode},
		{User: wireless4GRequest, Assistant: wireless4GCode},
	}
}
