package environment

// Canonical iRODS client environment keywords as written in
// irods_environment.json.
const (
	KeyUserName                 = "irods_user_name"
	KeyHost                     = "irods_host"
	KeyPort                     = "irods_port"
	KeyXmsgHost                 = "irods_xmsg_host"
	KeyXmsgPort                 = "irods_xmsg_port"
	KeyHome                     = "irods_home"
	KeyCwd                      = "irods_cwd"
	KeyAuthenticationScheme     = "irods_authentication_scheme"
	KeyDefaultResource          = "irods_default_resource"
	KeyZoneName                 = "irods_zone_name"
	KeyGSIServerDN              = "irods_gsi_server_dn"
	KeyLogLevel                 = "irods_log_level"
	KeyAuthenticationFile       = "irods_authentication_file"
	KeyDebug                    = "irods_debug"
	KeyClientServerPolicy       = "irods_client_server_policy"
	KeyClientServerNegotiation  = "irods_client_server_negotiation"
	KeyEncryptionKeySize        = "irods_encryption_key_size"
	KeyEncryptionSaltSize       = "irods_encryption_salt_size"
	KeyEncryptionNumHashRounds  = "irods_encryption_num_hash_rounds"
	KeyEncryptionAlgorithm      = "irods_encryption_algorithm"
	KeyDefaultHashScheme        = "irods_default_hash_scheme"
	KeyMatchHashPolicy          = "irods_match_hash_policy"
	KeySSLCACertificatePath     = "irods_ssl_ca_certificate_path"
	KeySSLCACertificateFile     = "irods_ssl_ca_certificate_file"
	KeySSLVerifyServer          = "irods_ssl_verify_server"
	KeySSLCertificateChainFile  = "irods_ssl_certificate_chain_file"
	KeySSLCertificateKeyFile    = "irods_ssl_certificate_key_file"
	KeySSLDHParamsFile          = "irods_ssl_dh_params_file"
	KeyServerControlPlaneKey    = "irods_server_control_plane_key"
	KeyServerControlPlanePort   = "irods_server_control_plane_port"
	KeyServerControlPlaneRounds = "irods_server_control_plane_encryption_num_hash_rounds"
)

// defaultLegacyKeys maps each canonical keyword to the name the legacy
// .irodsEnv file uses for it.
var defaultLegacyKeys = map[string]string{
	KeyUserName:                "irodsUserName",
	KeyHost:                    "irodsHost",
	KeyPort:                    "irodsPort",
	KeyXmsgHost:                "xmsgHost",
	KeyXmsgPort:                "xmsgPort",
	KeyHome:                    "irodsHome",
	KeyCwd:                     "irodsCwd",
	KeyAuthenticationScheme:    "irodsAuthScheme",
	KeyDefaultResource:         "irodsDefResource",
	KeyZoneName:                "irodsZone",
	KeyGSIServerDN:             "irodsServerDn",
	KeyLogLevel:                "irodsLogLevel",
	KeyAuthenticationFile:      "irodsAuthFileName",
	KeyDebug:                   "irodsDebug",
	KeyClientServerPolicy:      "irodsClientServerPolicy",
	KeyClientServerNegotiation: "irodsClientServerNegotiation",
	KeyEncryptionKeySize:       "irodsEncryptionKeySize",
	KeyEncryptionSaltSize:      "irodsEncryptionSaltSize",
	KeyEncryptionNumHashRounds: "irodsEncryptionNumHashRounds",
	KeyEncryptionAlgorithm:     "irodsEncryptionAlgorithm",
	KeyDefaultHashScheme:       "irodsDefaultHashScheme",
	KeyMatchHashPolicy:         "irodsMatchHashPolicy",
	KeySSLCACertificatePath:    "irodsSSLCACertificatePath",
	KeySSLCACertificateFile:    "irodsSSLCACertificateFile",
	KeySSLVerifyServer:         "irodsSSLVerifyServer",
	KeySSLCertificateChainFile: "irodsSSLCertificateChainFile",
	KeySSLCertificateKeyFile:   "irodsSSLCertificateKeyFile",
	KeySSLDHParamsFile:         "irodsSSLDHParamsFile",
}

// LegacyKeys is an immutable alias table from the key a caller asks for to
// the legacy name a legacy capture stores it under. The table is consulted
// only by reads, and only in that direction.
type LegacyKeys struct {
	aliases map[string]string
}

// NewLegacyKeys copies aliases into a new table.
func NewLegacyKeys(aliases map[string]string) LegacyKeys {
	cp := make(map[string]string, len(aliases))
	for k, v := range aliases {
		cp[k] = v
	}
	return LegacyKeys{aliases: cp}
}

// DefaultLegacyKeys returns the built-in iRODS alias table.
func DefaultLegacyKeys() LegacyKeys {
	return NewLegacyKeys(defaultLegacyKeys)
}

// Lookup returns the legacy name registered for key.
func (lk LegacyKeys) Lookup(key string) (string, bool) {
	legacy, ok := lk.aliases[key]
	return legacy, ok
}

// Len returns the number of aliases.
func (lk LegacyKeys) Len() int {
	return len(lk.aliases)
}
