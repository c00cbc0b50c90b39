package geoflag

// rawTable lists one capital-city cell per country at three characters
// of geohash precision (roughly 156km by 156km). Micro-states whose
// capital shares a cell with a larger neighbor are omitted.
const rawTable = `🇬🇧:gcp
🇮🇪:gc7
🇫🇷:u09
🇩🇪:u33
🇪🇸:ezj
🇵🇹:eyc
🇮🇹:sr2
🇳🇱:u17
🇧🇪:u15
🇱🇺:u0u
🇨🇭:u0m
🇦🇹:u2e
🇨🇿:u2f
🇵🇱:u3q
🇩🇰:u3b
🇳🇴:u4x
🇸🇪:u6s
🇫🇮:ud9
🇮🇸:ge2
🇷🇺:ucf
🇺🇦:u8v
🇧🇾:u9e
🇷🇴:sxf
🇧🇬:sx8
🇬🇷:swb
🇹🇷:sxp
🇭🇺:u2m
🇸🇰:u2s
🇭🇷:u25
🇷🇸:sry
🇸🇮:u24
🇧🇦:srv
🇦🇱:srq
🇲🇰:srr
🇲🇪:srt
🇽🇰:srx
🇱🇹:u99
🇱🇻:ud1
🇪🇪:ud9
🇲🇩:u8k
🇨🇾:swr
🇲🇹:sq6
🇲🇨:spv
🇦🇩:sp9
🇸🇲:srb
🇱🇮:u0q
🇺🇸:dqc
🇨🇦:f24
🇲🇽:9g3
🇬🇹:9fx
🇧🇿:d50
🇸🇻:d42
🇭🇳:d49
🇳🇮:d44
🇨🇷:d1u
🇵🇦:d1x
🇨🇺:dhj
🇯🇲:d71
🇭🇹:d7k
🇩🇴:d7q
🇧🇸:dk3
🇹🇹:d9u
🇧🇧:ddm
🇨🇴:d2g
🇻🇪:d9b
🇪🇨:6rb
🇵🇪:6mc
🇧🇴:6mp
🇨🇱:66j
🇦🇷:69y
🇺🇾:6cb
🇵🇾:6ex
🇧🇷:6vj
🇬🇾:d9n
🇸🇷:dc0
🇨🇳:wx4
🇯🇵:xn7
🇰🇷:wyd
🇰🇵:wyc
🇹🇼:wsq
🇭🇰:wec
🇲🇴:web
🇲🇳:y2s
🇻🇳:w7e
🇹🇭:w4r
🇰🇭:w64
🇱🇦:w70
🇲🇲:w5s
🇲🇾:w28
🇸🇬:w21
🇮🇩:qqg
🇧🇳:w8c
🇵🇭:wdw
🇮🇳:ttn
🇵🇰:ttg
🇧🇩:wh0
🇱🇰:tc0
🇲🇻:t8s
🇳🇵:tuu
🇧🇹:tuz
🇦🇫:tw1
🇮🇷:tnk
🇮🇶:svz
🇸🇦:th3
🇦🇪:thq
🇶🇦:thk
🇰🇼:tj4
🇧🇭:the
🇴🇲:tk1
🇾🇪:sfx
🇯🇴:sv9
🇮🇱:svb
🇱🇧:sy1
🇸🇾:svc
🇦🇲:szp
🇬🇪:szr
🇦🇿:tp5
🇰🇿:v94
🇺🇿:tx3
🇰🇬:txt
🇹🇯:twb
🇹🇲:tq9
🇪🇬:stq
🇲🇦:ey5
🇩🇿:snd
🇹🇳:snw
🇱🇾:smc
🇸🇩:sdz
🇪🇹:sce
🇰🇪:kzf
🇹🇿:kyc
🇺🇬:s8n
🇷🇼:kxt
🇨🇩:kr4
🇳🇬:s1t
🇬🇭:ebz
🇨🇮:ebv
🇸🇳:ede
🇲🇱:ef4
🇧🇫:efn
🇳🇪:s43
🇹🇩:s64
🇨🇲:s28
🇬🇦:s0n
🇦🇴:kq3
🇿🇲:ktk
🇿🇼:ksy
🇲🇿:ker
🇲🇼:kv8
🇧🇼:ked
🇳🇦:k7u
🇿🇦:kek
🇱🇸:kdg
🇸🇿:keq
🇲🇬:mh9
🇲🇺:mkb
🇸🇨:mpp
🇸🇴:t02
🇩🇯:sfn
🇪🇷:sfe
🇱🇷:ec0
🇸🇱:e9w
🇲🇷:eeh
🇹🇬:s10
🇧🇯:s11
🇦🇺:r3d
🇳🇿:rbs
🇵🇬:rq2
🇫🇯:ruy`
