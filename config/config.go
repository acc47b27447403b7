package config

// DefaultZMQHighWaterMark is the outbound message high water mark applied to a
// publisher socket unless configured otherwise.
const DefaultZMQHighWaterMark = 100000

type Config struct {
	HomeDir           string `short:"A" long:"appdata" description:"Path to application home directory"`
	ConfigFile        string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir           string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir            string `long:"logdir" description:"Directory to log output."`
	NoFileLogging     bool   `long:"nofilelogging" description:"Disable file logging."`
	DbType            string `long:"dbtype" description:"Database backend to read raw blocks from {leveldb, bolt, badger}"`
	DebugLevel        string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, crit} "`
	DebugPrintOrigins bool   `long:"printorigin" description:"Print log debug location (file:line) "`
	Metrics           bool   `long:"metrics" description:"Enable collection of publisher metrics"`

	// ZMQ publishers
	Zmqpubhashblock        []string `long:"zmqpubhashblock" description:"Enable publish hash block in <address> (default or * for tcp://*:8230)"`
	Zmqpubhashtx           []string `long:"zmqpubhashtx" description:"Enable publish hash transaction in <address>"`
	Zmqpubrawblock         []string `long:"zmqpubrawblock" description:"Enable publish raw block in <address>"`
	Zmqpubrawtx            []string `long:"zmqpubrawtx" description:"Enable publish raw transaction in <address>"`
	Zmqpubsequence         []string `long:"zmqpubsequence" description:"Enable publish hash block and tx sequence in <address>"`
	Zmqpubmempooladded     []string `long:"zmqpubmempooladded" description:"Enable publish transactions added to the mempool with their fee in <address>"`
	Zmqpubmempoolremoved   []string `long:"zmqpubmempoolremoved" description:"Enable publish transactions removed from the mempool with the reason in <address>"`
	Zmqpubmempoolreplaced  []string `long:"zmqpubmempoolreplaced" description:"Enable publish replaced mempool transactions in <address>"`
	Zmqpubmempoolconfirmed []string `long:"zmqpubmempoolconfirmed" description:"Enable publish mempool transactions confirmed by a block in <address>"`
	Zmqpubchaintipchanged  []string `long:"zmqpubchaintipchanged" description:"Enable publish chain tip changes in <address>"`
	Zmqpubchainconnected   []string `long:"zmqpubchainconnected" description:"Enable publish every block connected to the chain in <address>"`
	Zmqpubchainheaderadded []string `long:"zmqpubchainheaderadded" description:"Enable publish every header added to the header tree in <address>"`

	Zmqpubhashblockhwm        int `long:"zmqpubhashblockhwm" description:"Set publish hash block outbound message high water mark"`
	Zmqpubhashtxhwm           int `long:"zmqpubhashtxhwm" description:"Set publish hash transaction outbound message high water mark"`
	Zmqpubrawblockhwm         int `long:"zmqpubrawblockhwm" description:"Set publish raw block outbound message high water mark"`
	Zmqpubrawtxhwm            int `long:"zmqpubrawtxhwm" description:"Set publish raw transaction outbound message high water mark"`
	Zmqpubsequencehwm         int `long:"zmqpubsequencehwm" description:"Set publish hash sequence message high water mark"`
	Zmqpubmempooladdedhwm     int `long:"zmqpubmempooladdedhwm" description:"Set publish mempooladded outbound message high water mark"`
	Zmqpubmempoolremovedhwm   int `long:"zmqpubmempoolremovedhwm" description:"Set publish mempoolremoved outbound message high water mark"`
	Zmqpubmempoolreplacedhwm  int `long:"zmqpubmempoolreplacedhwm" description:"Set publish mempoolreplaced outbound message high water mark"`
	Zmqpubmempoolconfirmedhwm int `long:"zmqpubmempoolconfirmedhwm" description:"Set publish mempoolconfirmed outbound message high water mark"`
	Zmqpubchaintipchangedhwm  int `long:"zmqpubchaintipchangedhwm" description:"Set publish chaintipchanged outbound message high water mark"`
	Zmqpubchainconnectedhwm   int `long:"zmqpubchainconnectedhwm" description:"Set publish chainconnected outbound message high water mark"`
	Zmqpubchainheaderaddedhwm int `long:"zmqpubchainheaderaddedhwm" description:"Set publish chainheaderadded outbound message high water mark"`
}

// ZMQPublisher binds one topic to one endpoint address.
type ZMQPublisher struct {
	Topic         string
	Address       string
	HighWaterMark int
}

// ZMQPublishers flattens the zmqpub options into one binding per configured
// address, in topic order.
func (c *Config) ZMQPublishers() []ZMQPublisher {
	options := []struct {
		topic string
		addrs []string
		hwm   int
	}{
		{"hashblock", c.Zmqpubhashblock, c.Zmqpubhashblockhwm},
		{"hashtx", c.Zmqpubhashtx, c.Zmqpubhashtxhwm},
		{"rawblock", c.Zmqpubrawblock, c.Zmqpubrawblockhwm},
		{"rawtx", c.Zmqpubrawtx, c.Zmqpubrawtxhwm},
		{"sequence", c.Zmqpubsequence, c.Zmqpubsequencehwm},
		{"mempooladded", c.Zmqpubmempooladded, c.Zmqpubmempooladdedhwm},
		{"mempoolremoved", c.Zmqpubmempoolremoved, c.Zmqpubmempoolremovedhwm},
		{"mempoolreplaced", c.Zmqpubmempoolreplaced, c.Zmqpubmempoolreplacedhwm},
		{"mempoolconfirmed", c.Zmqpubmempoolconfirmed, c.Zmqpubmempoolconfirmedhwm},
		{"chaintipchanged", c.Zmqpubchaintipchanged, c.Zmqpubchaintipchangedhwm},
		{"chainconnected", c.Zmqpubchainconnected, c.Zmqpubchainconnectedhwm},
		{"chainheaderadded", c.Zmqpubchainheaderadded, c.Zmqpubchainheaderaddedhwm},
	}
	var pubs []ZMQPublisher
	for _, opt := range options {
		for _, addr := range opt.addrs {
			pubs = append(pubs, ZMQPublisher{
				Topic:         opt.topic,
				Address:       addr,
				HighWaterMark: opt.hwm,
			})
		}
	}
	return pubs
}
